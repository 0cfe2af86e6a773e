package stores

import (
	"context"
	"errors"

	"lumina-store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderStore provides access to open orders.
type OrderStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	FindOpen(ctx context.Context, productID, email string) (*models.Order, error)
	Insert(ctx context.Context, order models.Order) (string, error)
	IncrementQuantity(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// MongoOrderStore implements OrderStore over the order collection.
type MongoOrderStore struct {
	collection *mongo.Collection
}

// NewMongoOrderStore creates a MongoOrderStore from a connected client.
func NewMongoOrderStore(client *mongo.Client) *MongoOrderStore {
	return &MongoOrderStore{
		collection: client.Database(dbName).Collection(orderCollection),
	}
}

func (s *MongoOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) FindOpen(ctx context.Context, productID, email string) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"product_id": productID, "email": email}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) Insert(ctx context.Context, order models.Order) (string, error) {
	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// IncrementQuantity bumps an order's quantity by one. The $inc is atomic on
// the server, so concurrent bumps never lose updates.
func (s *MongoOrderStore) IncrementQuantity(ctx context.Context, id primitive.ObjectID) (int64, error) {
	update := bson.M{"$inc": bson.M{"quantity": 1}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoOrderStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByIDs removes every order whose hex id is in ids. Unparseable ids are
// skipped; settlement payloads carry ids produced by this service.
func (s *MongoOrderStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return 0, nil
	}
	result, err := s.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
