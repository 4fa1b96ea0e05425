package event

import (
	"context"

	"github.com/bornholm/foyer/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// SQLite primary result codes raised by concurrent writers.
const (
	codeBusy   = 5
	codeLocked = 6
)

// Create records a new login event, retrying while a concurrent login holds
// the write lock.
func (r *Repository) Create(ctx context.Context, event *store.LoginEvent) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(event).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, codeBusy, codeLocked)
}

// ListRecent retrieves the most recent login events, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*store.LoginEvent, error) {
	var events []*store.LoginEvent
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Order("created_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		if err := query.Find(&events).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountByOutcome counts events per outcome for a given method. An empty
// method counts across all methods.
func (r *Repository) CountByOutcome(ctx context.Context, method string, outcome string) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&store.LoginEvent{}).Where("outcome = ?", outcome)
		if method != "" {
			query = query.Where("method = ?", method)
		}
		if err := query.Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
