package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product : entrée du catalogue, en lecture seule côté API.
type Product struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Image string             `bson:"image" json:"image"`
}
