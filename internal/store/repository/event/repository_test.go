package event

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bornholm/foyer/internal/store"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not retrieve database handle: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	return NewRepository(store.New(db))
}

func TestRepositoryCreateConcurrent(t *testing.T) {
	repo := newTestRepository(t)

	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event := store.NewLoginEvent(fmt.Sprintf("evt-%d", i), "password", store.OutcomeSuccess)
			errs <- repo.Create(ctx, event)
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("could not create event: %v", err)
		}
	}

	all, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("could not list events: %v", err)
	}

	if len(all) != 8 {
		t.Errorf("expected 8 events, got %d", len(all))
	}
}

func TestRepositoryCreateAndList(t *testing.T) {
	repo := newTestRepository(t)

	ctx := context.Background()

	events := []*store.LoginEvent{
		store.NewLoginEvent("evt-1", "github", store.OutcomeInitiated),
		store.NewLoginEvent("evt-2", "github", store.OutcomeSuccess),
		store.NewLoginEvent("evt-3", "password", store.OutcomeFailure),
	}

	for _, event := range events {
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("could not create event %s: %v", event.EventID, err)
		}
	}

	listed, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("could not list events: %v", err)
	}

	if len(listed) != 2 {
		t.Errorf("expected 2 events, got %d", len(listed))
	}

	all, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("could not list events: %v", err)
	}

	if len(all) != 3 {
		t.Errorf("expected 3 events, got %d", len(all))
	}
}

func TestRepositoryCountByOutcome(t *testing.T) {
	repo := newTestRepository(t)

	ctx := context.Background()

	seed := []*store.LoginEvent{
		store.NewLoginEvent("evt-1", "github", store.OutcomeSuccess),
		store.NewLoginEvent("evt-2", "password", store.OutcomeSuccess),
		store.NewLoginEvent("evt-3", "password", store.OutcomeFailure),
		store.NewLoginEvent("evt-4", "password", store.OutcomeFailure),
	}

	for _, event := range seed {
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("could not create event %s: %v", event.EventID, err)
		}
	}

	tests := []struct {
		name     string
		method   string
		outcome  string
		expected int64
	}{
		{name: "all successes", method: "", outcome: store.OutcomeSuccess, expected: 2},
		{name: "password failures", method: "password", outcome: store.OutcomeFailure, expected: 2},
		{name: "github failures", method: "github", outcome: store.OutcomeFailure, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.CountByOutcome(ctx, tt.method, tt.outcome)
			if err != nil {
				t.Fatalf("could not count events: %v", err)
			}

			if count != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, count)
			}
		})
	}
}
