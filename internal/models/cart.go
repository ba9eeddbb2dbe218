package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart : un document par utilisateur, créé par upsert au premier ajout.
type Cart struct {
	UserID string     `bson:"userId" json:"userId"`
	Items  []CartItem `bson:"items" json:"items"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
