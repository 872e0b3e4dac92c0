package bookings

import (
	"context"
	"fmt"

	"sportshub/internal/models"
	"sportshub/internal/store"
)

const collectionBookings = "booking"

// StoreLayer is the slice of the document store this service needs.
type StoreLayer interface {
	CreateDocument(ctx context.Context, collection string, fields store.Document) (string, error)
	GetDocuments(ctx context.Context, collection string, filter store.Document) ([]store.Document, error)
}

type Service struct {
	Store StoreLayer
}

func NewService(st StoreLayer) *Service {
	return &Service{Store: st}
}

// Create persists a booking and returns the stored record with its public id.
func (s *Service) Create(ctx context.Context, req models.BookingRequest) (store.Document, error) {
	fields := store.Document(req.Fields())
	id, err := s.Store.CreateDocument(ctx, collectionBookings, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	record := store.Document(req.Fields())
	record["id"] = id
	return record, nil
}

// List returns persisted bookings, filtered by exact user_id match when one
// is given. Read errors are returned to the caller; unlike games and posts,
// booking reads surface store failures.
func (s *Service) List(ctx context.Context, userID string) ([]store.Document, error) {
	filter := store.Document{}
	if userID != "" {
		filter["user_id"] = userID
	}

	docs, err := s.Store.GetDocuments(ctx, collectionBookings, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if docs == nil {
		docs = []store.Document{}
	}
	return store.NormalizeIDs(docs), nil
}
