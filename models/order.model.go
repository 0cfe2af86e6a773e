package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents an open order line. At most one order exists per
// (product_id, email) pair; repeat placements increment Quantity.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Email     string             `bson:"email" json:"email"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
