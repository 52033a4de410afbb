// Package db owns the MongoDB connection for the tracking service.
// The handle is created once at boot, injected into the services, and
// torn down when the process exits.
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names are fixed; one collection per entity.
const (
	ManagersCollection = "projectManagers"
	WorkCollection     = "work"
	JobsCollection     = "jobs"
)

type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes and verifies the MongoDB connection.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Mongo{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping checks that the backend still answers; used by the health
// endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close is the teardown hook, deferred from main for the process
// lifetime.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
