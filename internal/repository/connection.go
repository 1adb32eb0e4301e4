package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoOptions tunes the client pool. Zero fields take the defaults below.
type MongoOptions struct {
	AppName        string
	ConnectTimeout time.Duration
	SelectTimeout  time.Duration
	MaxPoolSize    uint64
	MinPoolSize    uint64
}

func (o MongoOptions) withDefaults() MongoOptions {
	if o.AppName == "" {
		o.AppName = "sneaker-service"
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	if o.SelectTimeout <= 0 {
		o.SelectTimeout = 5 * time.Second
	}
	if o.MaxPoolSize == 0 {
		o.MaxPoolSize = 100
	}
	return o
}

// ConnectMongoDB dials uri, verifies the primary is reachable and returns the
// named database. The client is owned by the caller; see DisconnectMongoDB.
func ConnectMongoDB(ctx context.Context, uri, database string, opts MongoOptions) (*mongo.Database, error) {
	opts = opts.withDefaults()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetAppName(opts.AppName).
		SetConnectTimeout(opts.ConnectTimeout).
		SetServerSelectionTimeout(opts.SelectTimeout).
		SetMaxPoolSize(opts.MaxPoolSize).
		SetMinPoolSize(opts.MinPoolSize))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// DisconnectMongoDB closes the client behind db. A nil db is a no-op.
func DisconnectMongoDB(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
