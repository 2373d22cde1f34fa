package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/DevanshuTiwaskar/portfolio/internal/logging"
	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup(logging.Options{Level: os.Getenv("LOG_LEVEL")})

	if err := newRootCmd().Execute(); err != nil {
		logging.Fatal("migrate failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	var dbURL string

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `migrate applies the embedded schema migrations to the database named by
--database-url or DATABASE_URL (postgres://..., sqlite:PATH or file:PATH).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), dbURL, runIncremental)
		},
	}
	root.PersistentFlags().StringVar(&dbURL, "database-url", os.Getenv("DATABASE_URL"), "database connection string")

	root.AddCommand(&cobra.Command{
		Use:   "fresh",
		Short: "Drop all tables and apply every migration again",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), dbURL, func(ctx context.Context, store repository.Store) error {
				slog.Info("dropping all tables")
				if err := store.Reset(ctx); err != nil {
					return fmt.Errorf("drop all: %w", err)
				}
				return runIncremental(ctx, store)
			})
		},
	})
	return root
}

func withStore(ctx context.Context, dbURL string, fn func(context.Context, repository.Store) error) error {
	if dbURL == "" {
		return errors.New("DATABASE_URL not set")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := repository.Open(ctx, dbURL)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(ctx, store)
}

func runIncremental(ctx context.Context, store repository.Store) error {
	applied, err := store.Migrate(ctx)
	if err != nil {
		return err
	}
	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
	return nil
}
