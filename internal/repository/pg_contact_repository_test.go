package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgContactRepository_SaveAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := Open(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Migrate(ctx)
	require.NoError(t, err)

	msg := newTestMessage("pg", time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond))
	require.NoError(t, store.Save(ctx, msg))

	got, err := store.List(ctx, model.ContactListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, msg.ID, got[0].ID)
	assert.Equal(t, msg.Type, got[0].Type)
	assert.True(t, got[0].CreatedAt.Equal(msg.CreatedAt))
}
