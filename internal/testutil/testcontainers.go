//go:build integration

// Package testutil provides test utilities and testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// ReplicaSetName is the single-node replica set the test container runs.
// Package diffs are applied in transactions, which MongoDB only allows on replica sets.
const ReplicaSetName = "rs0"

// SetupMongoDB creates and starts a MongoDB testcontainer running as a single-node replica set.
// Packages with several integration tests share one through RunWithMongoDB instead.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0", mongodb.WithReplicaSet(ReplicaSetName))
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	// The replica set advertises the container-internal host; connect to the mapped port directly.
	if !strings.Contains(uri, "directConnection") {
		sep := "/?"
		switch {
		case strings.Contains(uri, "?"):
			sep = "&"
		case strings.HasSuffix(uri, "/"):
			sep = "?"
		}
		uri += sep + "directConnection=true"
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}
