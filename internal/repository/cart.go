package repository

import (
	"context"

	"ecommerce_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository interface {
	Items(ctx context.Context, userID string) ([]models.CartItem, error)
	AddItem(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error)
	RemoveItem(ctx context.Context, userID string, productID primitive.ObjectID) ([]models.CartItem, error)
}

type cartRepoImpl struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) CartRepository {
	return &cartRepoImpl{collection: collection}
}

// Items renvoie la liste d'articles du panier, ou une liste vide
// si aucun document n'existe encore pour cet utilisateur.
func (r *cartRepoImpl) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		return []models.CartItem{}, nil
	}
	return cart.Items, nil
}

// AddItem ajoute l'article en fin de liste ($push), en créant le
// document si besoin (upsert). Les ajouts répétés d'un même produit
// s'empilent : pas de fusion de quantité.
func (r *cartRepoImpl) AddItem(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$push": bson.M{"items": item}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return r.Items(ctx, userID)
}

// RemoveItem retire toutes les entrées portant ce productId ($pull).
// Aucune erreur si l'article est absent.
func (r *cartRepoImpl) RemoveItem(ctx context.Context, userID string, productID primitive.ObjectID) ([]models.CartItem, error) {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"productId": productID}}},
	)
	if err != nil {
		return nil, err
	}
	return r.Items(ctx, userID)
}
