package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommands(t *testing.T) {
	dbURL := "sqlite:" + filepath.Join(t.TempDir(), "migrate.db")

	for _, args := range [][]string{
		{"--database-url", dbURL},
		{"--database-url", dbURL},
		{"fresh", "--database-url", dbURL},
	} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute(), "args %v", args)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, dbURL)
	require.NoError(t, err)
	defer store.Close()
	n, err := store.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	assert.Error(t, withStore(context.Background(), "", runIncremental))
}
