package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Collection names. The repositories in this package are the only place that
// references them.
const (
	userCollection      = "users"
	questionCollection  = "questions"
	advisoryCollection  = "advisories"
	marketCollection    = "markets"
	farmInputCollection = "inputs"
	storyCollection     = "stories"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// username and sparse unique email indexes are the authoritative uniqueness
// guards; the service-level existence checks only produce friendlier errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	if _, err := db.Collection(userCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}

	questions := []mongo.IndexModel{
		{Keys: bson.D{{Key: "expert_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "asker_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := db.Collection(questionCollection).Indexes().CreateMany(ctx, questions); err != nil {
		return fmt.Errorf("question indexes: %w", err)
	}

	inputs := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "product", Value: 1}}},
		{Keys: bson.D{{Key: "region", Value: 1}}},
	}
	if _, err := db.Collection(farmInputCollection).Indexes().CreateMany(ctx, inputs); err != nil {
		return fmt.Errorf("input indexes: %w", err)
	}

	return nil
}
