package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable is returned by every store operation when no database
// connection was established. Whether that turns into an HTTP error or an
// empty result is decided per handler, not here.
var ErrUnavailable = errors.New("document store unavailable")

// Document is one persisted record: named fields plus the store-assigned _id.
type Document = bson.M

// DocumentStore is the narrow persistence contract the handlers consume.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, fields Document) (string, error)
	GetDocuments(ctx context.Context, collection string, filter Document) ([]Document, error)
	ListCollections(ctx context.Context) ([]string, error)
	Name() string
	Connected() bool
}

// NormalizeID renames the store's internal _id field to a public string id.
// Callers never use the normalized id as a filter key.
func NormalizeID(doc Document) Document {
	raw, ok := doc["_id"]
	if !ok {
		return doc
	}
	delete(doc, "_id")
	switch v := raw.(type) {
	case primitive.ObjectID:
		doc["id"] = v.Hex()
	case string:
		doc["id"] = v
	default:
		doc["id"] = fmt.Sprintf("%v", v)
	}
	return doc
}

// NormalizeIDs applies NormalizeID across a result set, keeping order.
func NormalizeIDs(docs []Document) []Document {
	for _, d := range docs {
		NormalizeID(d)
	}
	return docs
}
