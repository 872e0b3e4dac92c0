package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore wraps a single *mongo.Database handle shared for the process
// lifetime. A nil database means the store never connected; operations then
// fail with ErrUnavailable.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the store once at startup and verifies it with a ping.
func Connect(ctx context.Context, uri, name string) (*MongoStore, error) {
	if uri == "" {
		return nil, fmt.Errorf("no store location configured: %w", ErrUnavailable)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open store connection: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach store: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Disconnected returns a store with no backing connection. Catalog and
// diagnostics endpoints still work; persisted resources see ErrUnavailable.
func Disconnected() *MongoStore {
	return &MongoStore{}
}

func (m *MongoStore) CreateDocument(ctx context.Context, collection string, fields Document) (string, error) {
	if m.db == nil {
		return "", ErrUnavailable
	}
	res, err := m.db.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return objectIDString(res.InsertedID), nil
}

func (m *MongoStore) GetDocuments(ctx context.Context, collection string, filter Document) ([]Document, error) {
	if m.db == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = Document{}
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents from %s: %w", collection, err)
	}
	return docs, nil
}

func (m *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	if m.db == nil {
		return nil, ErrUnavailable
	}
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (m *MongoStore) Name() string {
	if m.db == nil {
		return ""
	}
	return m.db.Name()
}

func (m *MongoStore) Connected() bool {
	return m.db != nil
}

// Close releases the shared connection at shutdown.
func (m *MongoStore) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func objectIDString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
