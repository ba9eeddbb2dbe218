package routes

import (
	"ecommerce_back_end/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Auth     *handlers.AuthHandler
	Payment  *handlers.PaymentHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(cors.Default())

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", h.Products.GetProducts)

	// Panier
	api.GET("/cart/:userId", h.Cart.GetCart)
	api.POST("/cart/:userId", h.Cart.AddToCart)
	api.DELETE("/cart/:userId/:productId", h.Cart.RemoveFromCart)

	// Comptes
	api.POST("/signup", h.Auth.SignUp)
	api.POST("/login", h.Auth.Login)

	// Paiement
	api.POST("/payment", h.Payment.ProcessPayment)
}
