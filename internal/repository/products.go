package repository

import (
	"context"

	"ecommerce_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	Seed(ctx context.Context, products []models.Product) error
}

type productRepoImpl struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) ProductRepository {
	return &productRepoImpl{collection: collection}
}

// All renvoie le catalogue complet, sans filtre ni pagination.
func (r *productRepoImpl) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Seed insère le catalogue de démonstration. Ne fait rien si la
// collection contient déjà des produits.
func (r *productRepoImpl) Seed(ctx context.Context, products []models.Product) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
