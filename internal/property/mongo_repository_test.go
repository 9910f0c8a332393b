package property

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/platform/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// These tests need a running MongoDB; set MONGO_TEST_URI to enable them.
func newMongoRepository(t *testing.T) Repository {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	cfg := &config.Config{MongoURI: uri, MongoConnectTimeout: 5 * time.Second}
	gw := mongodb.NewGateway(cfg, zap.NewNop())
	database := fmt.Sprintf("listings_test_%d", time.Now().UnixNano())

	t.Cleanup(func() {
		ctx := context.Background()
		if client, err := gw.EnsureConnected(ctx); err == nil {
			_ = client.Database(database).Drop(ctx)
		}
		_ = gw.Close(ctx)
	})

	repo := NewMongoRepository(gw, database, "properties")
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestMongoRepository_Lifecycle(t *testing.T) {
	repo := newMongoRepository(t)
	ctx := context.Background()

	l := validListing()
	require.NoError(t, repo.Create(ctx, l))
	assert.Len(t, l.ID, 24)

	got, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ListingID, got.ListingID)
	assert.NotNil(t, got.DocumentTypes)

	promoted, err := repo.UpdateStatus(ctx, l.ID, StatusInventory, l.UpdatedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, StatusInventory, promoted.Status)

	require.NoError(t, repo.Delete(ctx, l.ID))
	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err = repo.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestMongoRepository_MalformedIDIsNotNotFound(t *testing.T) {
	repo := newMongoRepository(t)

	_, err := repo.FindByID(context.Background(), "not-an-object-id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPropertyNotFound)
	assert.Contains(t, err.Error(), "Cast to ObjectId failed")
}
