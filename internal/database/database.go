package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"ecommerce_back_end/internal/config"

	"github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connections regroupe les trois connexions du service :
// MongoDB (produits, paniers) et les deux bases MySQL (comptes, paiements).
// Elles sont établies une fois au démarrage et fermées explicitement à l'arrêt.
type Connections struct {
	Mongo    *mongo.Client
	Products *mongo.Collection
	Carts    *mongo.Collection

	UsersDB    *sql.DB
	PaymentsDB *sql.DB
}

// Connect ouvre les trois connexions et vérifie chacune par un ping.
func Connect(ctx context.Context, cfg *config.Config) (*Connections, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	log.Println("✅ Connecté à MongoDB")

	db := client.Database(cfg.Mongo.Database)

	usersDB, err := connectMySQL(ctx, cfg.UsersDB)
	if err != nil {
		return nil, fmt.Errorf("connexion MySQL comptes: %w", err)
	}
	log.Println("✅ Connecté à MySQL (comptes)")

	paymentsDB, err := connectMySQL(ctx, cfg.Payments)
	if err != nil {
		return nil, fmt.Errorf("connexion MySQL paiements: %w", err)
	}
	log.Println("✅ Connecté à MySQL (paiements)")

	log.Println("✅ Toutes les bases de données sont connectées")

	return &Connections{
		Mongo:      client,
		Products:   db.Collection("products"),
		Carts:      db.Collection("carts"),
		UsersDB:    usersDB,
		PaymentsDB: paymentsDB,
	}, nil
}

func connectMySQL(ctx context.Context, cfg config.MySQL) (*sql.DB, error) {
	dsn := mysql.Config{
		User:                 cfg.User,
		Passwd:               cfg.Password,
		Net:                  "tcp",
		Addr:                 cfg.Host,
		DBName:               cfg.Database,
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close ferme les trois connexions.
func (c *Connections) Close(ctx context.Context) {
	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Println("❌ Erreur fermeture MongoDB:", err)
	} else {
		log.Println("🔌 Connexion MongoDB fermée")
	}

	if err := c.UsersDB.Close(); err != nil {
		log.Println("❌ Erreur fermeture MySQL comptes:", err)
	} else {
		log.Println("🔌 Connexion MySQL (comptes) fermée")
	}

	if err := c.PaymentsDB.Close(); err != nil {
		log.Println("❌ Erreur fermeture MySQL paiements:", err)
	} else {
		log.Println("🔌 Connexion MySQL (paiements) fermée")
	}
}
