package main

import (
	"context"
	"log"
	"time"

	"ecommerce_back_end/internal/config"
	"ecommerce_back_end/internal/database"
	"ecommerce_back_end/internal/models"
	"ecommerce_back_end/internal/repository"
)

// Catalogue de démonstration servi par GET /api/products.
var demoProducts = []models.Product{
	{Name: "Apple", Price: 1.2, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT5Dz7-XilV0DK4h05_jPJkesswadW5b_KikQ&s"},
	{Name: "Grape", Price: 2.5, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQfambS60vTU5yzVsYsw0UgKi96DXJv0qJDuQ&s"},
	{Name: "Banana", Price: 0.5, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSgJhPGUzTP_ds8vnDK3pzL0UUZM-Y1TEZKPg&s"},
	{Name: "Guava", Price: 1.8, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTICQ_bjPqgE2Wa4E8DMzSvW5xww0wd-M3oJA&s"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration invalide:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conns, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Échec connexion bases de données:", err)
	}
	defer conns.Close(ctx)

	if err := conns.EnsureSchema(ctx); err != nil {
		log.Fatal("❌ Échec initialisation du schéma:", err)
	}

	products := repository.NewProductRepository(conns.Products)
	if err := products.Seed(ctx, demoProducts); err != nil {
		log.Fatal("❌ Échec insertion du catalogue:", err)
	}

	log.Println("✅ Catalogue de démonstration en place")
}
