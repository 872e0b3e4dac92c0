package social

import (
	"context"
	"fmt"

	"sportshub/internal/models"
	"sportshub/internal/store"
)

// StoreLayer is the slice of the document store this service needs.
type StoreLayer interface {
	CreateDocument(ctx context.Context, collection string, fields store.Document) (string, error)
	GetDocuments(ctx context.Context, collection string, filter store.Document) ([]store.Document, error)
}

// resource binds a collection to its read-error policy. Games and posts
// swallow read failures into an empty list; bookings (a different service)
// surface them. The asymmetry is inherited behavior and is kept explicit
// here rather than hidden in duplicated error handling.
type resource struct {
	collection     string
	surfaceReadErr bool
}

var (
	gameResource = resource{collection: "game", surfaceReadErr: false}
	postResource = resource{collection: "socialpost", surfaceReadErr: false}
)

type Service struct {
	Store StoreLayer
}

func NewService(st StoreLayer) *Service {
	return &Service{Store: st}
}

func (s *Service) CreateGame(ctx context.Context, req models.GameRequest) (store.Document, error) {
	req.ApplyDefaults()
	return s.create(ctx, gameResource, req.Fields())
}

func (s *Service) ListGames(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx, gameResource)
}

func (s *Service) CreatePost(ctx context.Context, req models.PostRequest) (store.Document, error) {
	return s.create(ctx, postResource, req.Fields())
}

func (s *Service) ListPosts(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx, postResource)
}

func (s *Service) create(ctx context.Context, res resource, fields map[string]interface{}) (store.Document, error) {
	doc := store.Document(fields)
	id, err := s.Store.CreateDocument(ctx, res.collection, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", res.collection, err)
	}

	record := store.Document{}
	for k, v := range fields {
		record[k] = v
	}
	record["id"] = id
	return record, nil
}

func (s *Service) list(ctx context.Context, res resource) ([]store.Document, error) {
	docs, err := s.Store.GetDocuments(ctx, res.collection, store.Document{})
	if err != nil {
		if !res.surfaceReadErr {
			return []store.Document{}, nil
		}
		return nil, fmt.Errorf("failed to fetch %s documents: %w", res.collection, err)
	}
	if docs == nil {
		docs = []store.Document{}
	}
	return store.NormalizeIDs(docs), nil
}
