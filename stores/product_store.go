package stores

import (
	"context"
	"errors"

	"lumina-store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductStore provides CRUD access to the catalog.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product models.Product) (string, error)
	Update(ctx context.Context, id string, product models.Product) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// MongoProductStore implements ProductStore over the clothes collection.
type MongoProductStore struct {
	collection *mongo.Collection
}

// NewMongoProductStore creates a MongoProductStore from a connected client.
func NewMongoProductStore(client *mongo.Client) *MongoProductStore {
	return &MongoProductStore{
		collection: client.Database(dbName).Collection(productCollection),
	}
}

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *MongoProductStore) Insert(ctx context.Context, product models.Product) (string, error) {
	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update overwrites the mutable product fields, matching the original
// catalog update which always sets the full field list.
func (s *MongoProductStore) Update(ctx context.Context, id string, product models.Product) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	update := bson.M{
		"$set": bson.M{
			"short_description": product.ShortDescription,
			"new_price":         product.NewPrice,
			"old_price":         product.OldPrice,
			"category":          product.Category,
			"image":             product.Image,
		},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id string) (int64, error) {
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

func (s *MongoProductStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}
