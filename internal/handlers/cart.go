package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecommerce_back_end/internal/models"
	"ecommerce_back_end/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartHandler struct {
	carts repository.CartRepository
}

func NewCartHandler(carts repository.CartRepository) *CartHandler {
	return &CartHandler{carts: carts}
}

// 🟢 GET /api/cart/:userId
// Panier vide (jamais une erreur) tant que l'utilisateur n'a rien ajouté.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.carts.Items(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur récupération panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de récupérer le panier"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// 🟢 POST /api/cart/:userId
// Ajoute l'article au document panier (upsert), puis renvoie la liste
// complète mise à jour. Un produit déjà présent est ajouté en double.
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := c.Param("userId")

	var input struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	item := models.CartItem{
		ProductID: productID,
		Name:      input.Name,
		Price:     input.Price,
		Quantity:  input.Quantity,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.carts.AddItem(ctx, userID, item)
	if err != nil {
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'ajouter au panier"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ❌ DELETE /api/cart/:userId/:productId
// Retire toutes les entrées portant ce productId. Renvoie 200 même si
// l'article n'était pas dans le panier.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID := c.Param("userId")

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.carts.RemoveItem(ctx, userID, productID)
	if err != nil {
		log.Println("❌ Erreur suppression du panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de retirer l'article du panier"})
		return
	}

	c.JSON(http.StatusOK, items)
}
