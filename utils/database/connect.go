package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	// Operations fail fast while the server is unreachable instead of
	// buffering; the driver keeps retrying the connection on its own.
	serverSelectionTimeout = 5 * time.Second
	maxPoolSize            = 10
)

// Connect builds the client and verifies the server is reachable before
// the bot starts taking commands.
func Connect(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}

	return client, nil
}
