package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);
`

const paymentsSchema = `
	CREATE TABLE IF NOT EXISTS payments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(255) NOT NULL,
		pincode VARCHAR(32) NOT NULL,
		mobile_number VARCHAR(32) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// EnsureSchema crée les tables et index manquants. Idempotent,
// exécuté à chaque démarrage du serveur.
func (c *Connections) EnsureSchema(ctx context.Context) error {
	if _, err := c.UsersDB.ExecContext(ctx, usersSchema); err != nil {
		return fmt.Errorf("schéma users: %w", err)
	}

	if _, err := c.PaymentsDB.ExecContext(ctx, paymentsSchema); err != nil {
		return fmt.Errorf("schéma payments: %w", err)
	}

	// Un seul document panier par utilisateur
	_, err := c.Carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("index carts.userId: %w", err)
	}

	return nil
}
