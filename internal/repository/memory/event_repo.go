// Package memory provides the read-only in-memory catalog.
package memory

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gocarina/gocsv"

	"collegeevents/internal/domain"
)

type eventRepository struct {
	mu     sync.RWMutex
	events []domain.Event
	byID   map[string]int
}

// NewEventRepository returns a catalog over a copy of events, kept in the given
// order. IDs must be unique.
func NewEventRepository(events []domain.Event) (domain.EventRepository, error) {
	byID := make(map[string]int, len(events))
	for i, e := range events {
		if e.ID == "" {
			return nil, fmt.Errorf("event at position %d has no id", i)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %q", e.ID)
		}
		byID[e.ID] = i
	}
	return &eventRepository{
		events: append([]domain.Event(nil), events...),
		byID:   byID,
	}, nil
}

// NewSeedRepository returns the catalog backed by SampleEvents.
func NewSeedRepository() domain.EventRepository {
	repo, err := NewEventRepository(SampleEvents())
	if err != nil {
		panic(err)
	}
	return repo
}

// NewCSVRepository loads the catalog from a CSV file with a header row
// (id,event_name,event_date,event_type,college,location,link,description).
func NewCSVRepository(path string) (domain.EventRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	events, err := LoadCSV(f)
	if err != nil {
		return nil, err
	}
	return NewEventRepository(events)
}

// NewFetchedRepository loads the catalog once from fetcher.
func NewFetchedRepository(ctx context.Context, fetcher domain.CatalogFetcher) (domain.EventRepository, error) {
	events, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return NewEventRepository(events)
}

// LoadCSV decodes catalog rows from r in file order.
func LoadCSV(r io.Reader) ([]domain.Event, error) {
	var rows []*domain.Event
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode catalog csv: %w", err)
	}
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, *row)
	}
	return events, nil
}

func (r *eventRepository) List(_ context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Event(nil), r.events...), nil
}

func (r *eventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e := r.events[i]
	return &e, nil
}
