package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered identity in the store
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "user" or "admin"
}
