// Package stores wraps the MongoDB collections behind per-domain interfaces
// so controllers receive an explicitly owned store at construction.
package stores

import (
	"errors"
)

const (
	dbName            = "luminaStore"
	userCollection    = "user"
	productCollection = "clothes"
	orderCollection   = "order"
	paymentCollection = "payment"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")
