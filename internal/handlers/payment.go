package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecommerce_back_end/internal/models"
	"ecommerce_back_end/internal/repository"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments repository.PaymentRepository
}

func NewPaymentHandler(payments repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// 🟢 POST /api/payment
// Persiste uniquement les coordonnées du formulaire. Le client envoie
// aussi le contenu de son panier (cartItems) : il n'est ni stocké ni
// vérifié contre le panier serveur.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var input struct {
		Name         string            `json:"name"`
		Address      string            `json:"address"`
		Pincode      string            `json:"pincode"`
		MobileNumber string            `json:"mobileNumber"`
		CartItems    []models.CartItem `json:"cartItems"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	payment := models.Payment{
		Name:         input.Name,
		Address:      input.Address,
		Pincode:      input.Pincode,
		MobileNumber: input.MobileNumber,
	}

	if err := h.payments.Record(ctx, payment); err != nil {
		log.Println("❌ Erreur enregistrement paiement:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec du traitement du paiement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paiement traité avec succès"})
}
