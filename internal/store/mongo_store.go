package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nmzz209741/products-inventory/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// MongoStore keeps products in a single collection keyed on _id.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	return &MongoStore{collection: db.Collection(collection)}
}

func (s *MongoStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	filter := bson.M{"_id": id}
	err := s.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (s *MongoStore) Scan(ctx context.Context, limit int64, startKey string) ([]domain.Product, string, error) {
	filter := bson.M{}
	if startKey != "" {
		filter = bson.M{"_id": bson.M{"$gt": startKey}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, "", fmt.Errorf("failed to decode products: %w", err)
	}

	// A full page may have more behind it; hand back the last id as the
	// continuation token. A short page is always the end of the scan.
	nextKey := ""
	if int64(len(products)) == limit {
		nextKey = products[len(products)-1].ID
	}

	return products, nextKey, nil
}

func (s *MongoStore) Put(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		return nil, ErrMissingID
	}

	filter := bson.M{"_id": product.ID}
	opts := options.Replace().SetUpsert(true)

	_, err := s.collection.ReplaceOne(ctx, filter, product, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to put product: %w", err)
	}

	return product, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	// Read first, so "already absent" is distinguishable from "deleted".
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
