package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/migrations"
)

// SQLiteContactRepository stores contact messages in a SQLite database.
// Used for local development and single-host deployments.
type SQLiteContactRepository struct {
	db         *sql.DB
	migrations fs.FS
}

// NewSQLiteContactRepository creates a SQLiteContactRepository on an open database.
func NewSQLiteContactRepository(db *sql.DB) *SQLiteContactRepository {
	return &SQLiteContactRepository{db: db, migrations: migrations.SQLite()}
}

var _ Store = (*SQLiteContactRepository)(nil)

// Save inserts a new contact_messages row. ID and CreatedAt must already be set.
func (r *SQLiteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, type, message, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Type, msg.Message, msg.Read, msg.CreatedAt.UTC(),
	)
	return err
}

// List returns contact messages newest first, paginated by limit/offset.
func (r *SQLiteContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	where := ""
	if opts.UnreadOnly {
		where = "WHERE read = 0 "
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, type, message, read, created_at
		 FROM contact_messages `+where+
			`ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		opts.Limit, opts.Offset,
	)
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

// Ping checks that the database file is usable.
func (r *SQLiteContactRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Migrate applies the embedded SQLite migrations that are not yet recorded
// in schema_migrations.
func (r *SQLiteContactRepository) Migrate(ctx context.Context) (int, error) {
	if _, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := loadMigrations(r.migrations)
	if err != nil {
		return 0, fmt.Errorf("read migrations: %w", err)
	}

	applied := 0
	for _, m := range pending {
		var n int
		if err := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE name = ?", m.name,
		).Scan(&n); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", m.name, err)
		}
		if n > 0 {
			continue
		}
		if _, err := r.db.ExecContext(ctx, m.sql); err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.name, err)
		}
		if _, err := r.db.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES (?)", m.name); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", m.name, err)
		}
		applied++
	}
	return applied, nil
}

// Reset drops all tables.
func (r *SQLiteContactRepository) Reset(ctx context.Context) error {
	stmt, err := fs.ReadFile(r.migrations, dropAllFile)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, string(stmt))
	return err
}

// Close closes the database handle.
func (r *SQLiteContactRepository) Close() {
	_ = r.db.Close()
}
