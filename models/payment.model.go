package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a settled checkout. OrderProducts holds the hex ids of the
// orders cleared by the settlement; ProductsID holds the category references
// used by the order-statistics breakdown. Immutable after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	OrderProducts []string           `bson:"orderProducts" json:"orderProducts"`
	ProductsID    []string           `bson:"productsId" json:"productsId"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
}
