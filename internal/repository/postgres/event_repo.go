// Package postgres loads the catalog from a Postgres events table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"collegeevents/internal/domain"
)

const eventColumns = `id, event_name, event_date, event_type, college, location, link, description`

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a read-only catalog over the events table.
// Catalog order is the position column.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		e         domain.Event
		eventDate time.Time
		eventType string
	)
	if err := row.Scan(&e.ID, &e.EventName, &eventDate, &eventType, &e.College, &e.Location, &e.Link, &e.Description); err != nil {
		return domain.Event{}, err
	}
	e.EventDate = eventDate.Format(time.DateOnly)
	e.EventType = domain.EventType(eventType)
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY position ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
