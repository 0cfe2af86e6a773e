package stores

import (
	"context"

	"lumina-store/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentStore provides access to settled payments and the aggregate views
// built over them.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryBreakdown(ctx context.Context) ([]models.CategoryStat, error)
}

// MongoPaymentStore implements PaymentStore over the payment collection.
type MongoPaymentStore struct {
	collection *mongo.Collection
}

// NewMongoPaymentStore creates a MongoPaymentStore from a connected client.
func NewMongoPaymentStore(client *mongo.Client) *MongoPaymentStore {
	return &MongoPaymentStore{
		collection: client.Database(dbName).Collection(paymentCollection),
	}
}

func (s *MongoPaymentStore) Insert(ctx context.Context, payment models.Payment) (string, error) {
	result, err := s.collection.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *MongoPaymentStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

// TotalRevenue sums the price field over every payment. Zero when the
// collection is empty.
func (s *MongoPaymentStore) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CategoryBreakdown expands every payment's category references, joins them
// against the catalog and groups the matched items per category with a line
// count and a revenue sum over current prices.
func (s *MongoPaymentStore) CategoryBreakdown(ctx context.Context) ([]models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$productsId"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productCollection},
			{Key: "localField", Value: "productsId"},
			{Key: "foreignField", Value: "category"},
			{Key: "as", Value: "matchedItems"},
		}}},
		{{Key: "$unwind", Value: "$matchedItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$matchedItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$matchedItems.new_price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.CategoryStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
