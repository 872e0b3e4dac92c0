package social_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sportshub/internal/models"
	"sportshub/internal/social"
	"sportshub/internal/store"
)

// fakeStore keeps documents in memory, including store-assigned ids and
// insertion order. unavailable simulates an unreachable store.
type fakeStore struct {
	collections map[string][]store.Document
	unavailable bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]store.Document)}
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, fields store.Document) (string, error) {
	if f.unavailable {
		return "", store.ErrUnavailable
	}
	id := uuid.New().String()
	doc := store.Document{"_id": id}
	for k, v := range fields {
		doc[k] = v
	}
	f.collections[collection] = append(f.collections[collection], doc)
	return id, nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter store.Document) ([]store.Document, error) {
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	var docs []store.Document
	for _, doc := range f.collections[collection] {
		copied := store.Document{}
		for k, v := range doc {
			copied[k] = v
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func TestCreateGameAppliesDefaults(t *testing.T) {
	svc := social.NewService(newFakeStore())

	record, err := svc.CreateGame(context.Background(), models.GameRequest{
		Title: "3v3 Pickup",
		Sport: "basketball",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, record["id"])
	assert.Equal(t, models.VisibilityPublic, record["visibility"])
	assert.Equal(t, models.DefaultMaxPlayers, record["max_players"])
	assert.Equal(t, []string{}, record["players"])
}

func TestCreateGameThenListRoundTrip(t *testing.T) {
	svc := social.NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, models.GameRequest{Title: "3v3 Pickup", Sport: "basketball"})
	assert.NoError(t, err)

	games, err := svc.ListGames(ctx)
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, "basketball", games[0]["sport"])
	assert.Equal(t, models.VisibilityPublic, games[0]["visibility"])
	assert.Equal(t, models.DefaultMaxPlayers, games[0]["max_players"])
}

func TestCreateGameSurfacesStoreError(t *testing.T) {
	svc := social.NewService(&fakeStore{unavailable: true})

	_, err := svc.CreateGame(context.Background(), models.GameRequest{Title: "t", Sport: "s"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

// Read failures for games and posts are swallowed into an empty list; only
// booking reads surface them.
func TestListSwallowsReadErrors(t *testing.T) {
	svc := social.NewService(&fakeStore{unavailable: true})
	ctx := context.Background()

	games, err := svc.ListGames(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)

	posts, err := svc.ListPosts(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestCreatePostThenListRoundTrip(t *testing.T) {
	svc := social.NewService(newFakeStore())
	ctx := context.Background()

	record, err := svc.CreatePost(ctx, models.PostRequest{
		UserID:  "u1",
		Content: "Great game today",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, record["id"])

	posts, err := svc.ListPosts(ctx)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "Great game today", posts[0]["content"])
	assert.Equal(t, record["id"], posts[0]["id"])
}

func TestGamesAndPostsUseSeparateCollections(t *testing.T) {
	svc := social.NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, models.GameRequest{Title: "3v3 Pickup", Sport: "basketball"})
	assert.NoError(t, err)

	posts, err := svc.ListPosts(ctx)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}
