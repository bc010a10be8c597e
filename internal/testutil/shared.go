//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// SharedMongoDB starts the package's replica-set container on first use and returns it.
func SharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	return shared, sharedErr
}

// RunWithMongoDB runs m against one shared container and terminates it afterwards.
// Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(m))
//	}
func RunWithMongoDB(m *testing.M) int {
	ctx := context.Background()
	if _, err := SharedMongoDB(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mongodb container: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := shared.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// SharedURI returns the connection string of the shared container.
func SharedURI() string {
	if shared == nil {
		panic("testutil: shared MongoDB container not started, use RunWithMongoDB in TestMain")
	}
	return shared.URI
}

// TestDatabase returns a database name for t on the shared container and drops the
// database when t finishes, so the packages and locations of one test never leak
// into another.
func TestDatabase(t testing.TB) string {
	t.Helper()
	name := DatabaseName(t.Name())
	uri := SharedURI()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			t.Logf("drop %s: %v", name, err)
			return
		}
		defer func() { _ = client.Disconnect(ctx) }()
		if err := client.Database(name).Drop(ctx); err != nil {
			t.Logf("drop %s: %v", name, err)
		}
	})
	return name
}
