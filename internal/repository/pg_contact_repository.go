package repository

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool       *pgxpool.Pool
	migrations fs.FS
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool, migrations: migrations.Postgres()}
}

// Ensure PgContactRepository implements Store at compile time.
var _ Store = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row. ID and CreatedAt must already be set.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, type, message, read, created_at)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Type, msg.Message, msg.Read, msg.CreatedAt,
	)
	return err
}

// List returns contact messages newest first, paginated by limit/offset.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	where := ""
	if opts.UnreadOnly {
		where = "WHERE NOT read "
	}
	query := `SELECT id::text, name, email, type, message, read, created_at
	          FROM contact_messages ` + where +
		`ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Type, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// Ping checks that the database is reachable.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Migrate applies the embedded PostgreSQL migrations that are not yet recorded
// in schema_migrations.
func (r *PgContactRepository) Migrate(ctx context.Context) (int, error) {
	if _, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := loadMigrations(r.migrations)
	if err != nil {
		return 0, fmt.Errorf("read migrations: %w", err)
	}

	applied := 0
	for _, m := range pending {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", m.name,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", m.name, err)
		}
		if exists {
			continue
		}
		if _, err := r.pool.Exec(ctx, m.sql); err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.name, err)
		}
		if _, err := r.pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", m.name); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", m.name, err)
		}
		applied++
	}
	return applied, nil
}

// Reset drops all tables.
func (r *PgContactRepository) Reset(ctx context.Context) error {
	stmt, err := fs.ReadFile(r.migrations, dropAllFile)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, string(stmt))
	return err
}

// Close releases the pool.
func (r *PgContactRepository) Close() {
	r.pool.Close()
}

