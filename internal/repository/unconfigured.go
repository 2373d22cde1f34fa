package repository

import (
	"context"

	"github.com/DevanshuTiwaskar/portfolio/internal/model"
)

// UnconfiguredStore stands in when no DATABASE_URL is set. The process keeps
// running; every call fails with ErrNotConfigured.
type UnconfiguredStore struct{}

var _ Store = UnconfiguredStore{}

func (UnconfiguredStore) Save(context.Context, *model.ContactMessage) error { return ErrNotConfigured }

func (UnconfiguredStore) List(context.Context, model.ContactListOptions) ([]*model.ContactMessage, error) {
	return nil, ErrNotConfigured
}

func (UnconfiguredStore) Ping(context.Context) error { return ErrNotConfigured }

func (UnconfiguredStore) Migrate(context.Context) (int, error) { return 0, ErrNotConfigured }

func (UnconfiguredStore) Reset(context.Context) error { return ErrNotConfigured }

func (UnconfiguredStore) Close() {}
