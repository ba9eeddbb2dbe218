package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecommerce_back_end/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products repository.ProductRepository
}

func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// 🟢 GET /api/products
// Renvoie le catalogue complet, tel quel.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	products, err := h.products.All(ctx)
	if err != nil {
		log.Println("❌ Erreur récupération produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer les produits"})
		return
	}

	c.JSON(http.StatusOK, products)
}
