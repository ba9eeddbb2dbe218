package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ecommerce_back_end/internal/config"
	"ecommerce_back_end/internal/database"
	"ecommerce_back_end/internal/handlers"
	"ecommerce_back_end/internal/repository"
	"ecommerce_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conns, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Échec connexion bases de données:", err)
	}

	if err := conns.EnsureSchema(ctx); err != nil {
		log.Fatal("❌ Échec initialisation du schéma:", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Handlers{
		Products: handlers.NewProductHandler(repository.NewProductRepository(conns.Products)),
		Cart:     handlers.NewCartHandler(repository.NewCartRepository(conns.Carts)),
		Auth:     handlers.NewAuthHandler(repository.NewUserRepository(conns.UsersDB)),
		Payment:  handlers.NewPaymentHandler(repository.NewPaymentRepository(conns.PaymentsDB)),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Erreur serveur HTTP:", err)
		}
	}()

	<-ctx.Done()
	log.Println("🔌 Arrêt du serveur…")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Erreur arrêt serveur:", err)
	}
	conns.Close(shutdownCtx)
}
