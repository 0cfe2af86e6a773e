package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog item in the clothes collection
type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	NewPrice         float64            `bson:"new_price" json:"new_price"`
	OldPrice         float64            `bson:"old_price" json:"old_price"`
	Category         string             `bson:"category" json:"category"`
	Image            string             `bson:"image" json:"image"`
}
