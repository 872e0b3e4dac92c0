package diagnostics_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sportshub/internal/diagnostics"
	"sportshub/internal/logger"
	"sportshub/internal/store"
)

// fakeStore implements the full DocumentStore surface so the probe can be
// driven through every branch.
type fakeStore struct {
	connected   bool
	name        string
	collections []string
	listErr     error
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, fields store.Document) (string, error) {
	return "", store.ErrUnavailable
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter store.Document) ([]store.Document, error) {
	return nil, store.ErrUnavailable
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) Connected() bool { return f.connected }

func probe(t *testing.T, st store.DocumentStore, urlSet bool) diagnostics.Snapshot {
	t.Helper()
	handler := diagnostics.NewHandler(st, urlSet, logger.NewLogger())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.Probe(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var snapshot diagnostics.Snapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	return snapshot
}

func TestProbeDisconnectedStore(t *testing.T) {
	snapshot := probe(t, store.Disconnected(), false)

	assert.Equal(t, "✅ Running", snapshot.Backend)
	assert.Equal(t, "❌ Not Available", snapshot.Database)
	assert.Equal(t, "Not Connected", snapshot.ConnectionStatus)
	assert.Nil(t, snapshot.DatabaseURL)
	assert.Nil(t, snapshot.DatabaseName)
	assert.Empty(t, snapshot.Collections)
}

func TestProbeConnectedStore(t *testing.T) {
	st := &fakeStore{
		connected:   true,
		name:        "sportshub",
		collections: []string{"booking", "game", "socialpost"},
	}

	snapshot := probe(t, st, true)

	assert.Equal(t, "✅ Connected & Working", snapshot.Database)
	assert.Equal(t, "Connected", snapshot.ConnectionStatus)
	assert.Equal(t, "✅ Set", *snapshot.DatabaseURL)
	assert.Equal(t, "sportshub", *snapshot.DatabaseName)
	assert.Equal(t, []string{"booking", "game", "socialpost"}, snapshot.Collections)
}

func TestProbeReportsURLNotSet(t *testing.T) {
	st := &fakeStore{connected: true, name: "sportshub"}

	snapshot := probe(t, st, false)

	assert.Equal(t, "❌ Not Set", *snapshot.DatabaseURL)
}

func TestProbeTruncatesCollectionListingError(t *testing.T) {
	longMsg := strings.Repeat("x", 120)
	st := &fakeStore{connected: true, name: "sportshub", listErr: errors.New(longMsg)}

	snapshot := probe(t, st, true)

	assert.True(t, strings.HasPrefix(snapshot.Database, "⚠️ Connected but Error: "))
	assert.Equal(t, "⚠️ Connected but Error: "+longMsg[:50], snapshot.Database)
	assert.Empty(t, snapshot.Collections)
}

func TestProbeCapsCollectionsAtTen(t *testing.T) {
	names := make([]string, 15)
	for i := range names {
		names[i] = fmt.Sprintf("collection%02d", i)
	}
	st := &fakeStore{connected: true, name: "sportshub", collections: names}

	snapshot := probe(t, st, true)

	assert.Len(t, snapshot.Collections, 10)
	assert.Equal(t, names[:10], snapshot.Collections)
}

func TestRootLiveness(t *testing.T) {
	handler := diagnostics.NewHandler(store.Disconnected(), false, logger.NewLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Sports Hub API running"}`, w.Body.String())
}
