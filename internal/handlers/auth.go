package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"ecommerce_back_end/internal/repository"
	"ecommerce_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users repository.UserRepository
}

func NewAuthHandler(users repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// 🟢 POST /api/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Println("❌ Erreur hash mot de passe:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'inscription"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.users.Create(ctx, input.Username, hash); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ce nom d'utilisateur existe déjà, veuillez en choisir un autre"})
			return
		}
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'inscription"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Utilisateur créé avec succès"})
}

// 🟢 POST /api/login
// Le 401 est identique que l'utilisateur soit inconnu ou le mot de
// passe faux : on ne révèle pas l'existence d'un compte.
func (h *AuthHandler) Login(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		log.Println("❌ Erreur recherche utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la connexion"})
		return
	}

	ok := false
	if user != nil {
		ok, _ = utils.VerifyPassword(input.Password, user.Password)
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": user.ID})
}
