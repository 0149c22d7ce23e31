// shared/mongodb/client.go
package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps *mongo.Client with the database name so callers only deal in
// collection names.
type Client struct {
	mongoClient *mongo.Client
	database    string
}

// NewClient connects to MongoDB, pings the primary and returns a Client.
func NewClient(connStr, databaseName string) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if disconnectErr := client.Disconnect(context.Background()); disconnectErr != nil {
			log.Printf("WARN: Failed to disconnect MongoDB client after ping failure: %v", disconnectErr)
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Successfully connected to MongoDB!")
	return &Client{
		mongoClient: client,
		database:    databaseName,
	}, nil
}

// Collection returns a mongo.Collection for the specified collection name.
func (mc *Client) Collection(collectionName string) *mongo.Collection {
	return mc.mongoClient.Database(mc.database).Collection(collectionName)
}

// EnsureUniqueIndex creates an ascending unique index on field in the given
// collection. Index creation is idempotent on the server, so this is safe to
// run on every startup. Duplicate inserts against the indexed field surface
// as duplicate-key errors, which is how email uniqueness is enforced without
// a read-then-write race.
func (mc *Client) EnsureUniqueIndex(ctx context.Context, collectionName, field string) error {
	_, err := mc.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index on %s.%s: %w", collectionName, field, err)
	}
	return nil
}

// Disconnect closes the MongoDB client connection.
func (mc *Client) Disconnect(ctx context.Context) error {
	log.Println("Disconnecting from MongoDB...")
	return mc.mongoClient.Disconnect(ctx)
}

// RawClient provides access to the underlying *mongo.Client for advanced operations.
func (mc *Client) RawClient() *mongo.Client {
	return mc.mongoClient
}
