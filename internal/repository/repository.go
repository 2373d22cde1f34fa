package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

// Store is a contact message store together with its lifecycle operations.
type Store interface {
	ContactRepository
	DB
	// Migrate applies pending schema migrations and reports how many ran.
	Migrate(ctx context.Context) (int, error)
	// Reset drops every table managed by the migrations.
	Reset(ctx context.Context) error
	Close()
}

// NewPool は PostgreSQL 接続プールを生成する。
// 接続は初回利用時に確立されるため、起動時に DB が落ちていてもエラーにならない
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	return pgxpool.NewWithConfig(ctx, cfg)
}

// NewSQLite opens a SQLite database. path is a file path or a "file:" URI.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// single writer; SQLite serialises writes anyway
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open returns the Store that matches the connection string scheme:
// postgres:// and postgresql:// use pgx, sqlite: and file: use SQLite.
// An empty connection string yields an UnconfiguredStore. A Postgres server
// that is down does not make Open fail; use Ping to check reachability.
func Open(ctx context.Context, connString string) (Store, error) {
	switch {
	case connString == "":
		return UnconfiguredStore{}, nil
	case strings.HasPrefix(connString, "postgres://"), strings.HasPrefix(connString, "postgresql://"):
		pool, err := NewPool(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPgContactRepository(pool), nil
	case strings.HasPrefix(connString, "sqlite:"):
		db, err := NewSQLite(ctx, strings.TrimPrefix(connString, "sqlite:"))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return NewSQLiteContactRepository(db), nil
	case strings.HasPrefix(connString, "file:"):
		db, err := NewSQLite(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return NewSQLiteContactRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database URL scheme: %q", schemeOf(connString))
	}
}

func schemeOf(connString string) string {
	if i := strings.Index(connString, ":"); i > 0 {
		return connString[:i]
	}
	return connString
}
