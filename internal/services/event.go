package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"collegeevents/internal/catalog"
	"collegeevents/internal/domain"
	"collegeevents/internal/validation"
)

const submissionAcceptedMessage = "Event submitted successfully! It will be reviewed and added to our platform soon."

type eventService struct {
	eventRepo      domain.EventRepository
	effect         domain.SubmissionEffect
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
	newID          func() (string, error)
}

// EventServiceOption customises an EventService.
type EventServiceOption func(*eventService)

// WithClock sets the time source used for upcoming flags and submission timestamps.
func WithClock(now func() time.Time) EventServiceOption {
	return func(s *eventService) { s.now = now }
}

// WithIDGenerator sets the generator of ids for accepted submissions.
func WithIDGenerator(newID func() (string, error)) EventServiceOption {
	return func(s *eventService) { s.newID = newID }
}

// NewEventService returns the EventService over the given catalog. effect runs
// after a submission passes validation; nil means submissions are accepted as-is.
func NewEventService(eventRepo domain.EventRepository,
	effect domain.SubmissionEffect,
	logger *slog.Logger,
	timeout time.Duration,
	opts ...EventServiceOption,
) domain.EventService {
	if effect == nil {
		effect = domain.SubmissionEffectFunc(func(context.Context, domain.Event) error { return nil })
	}
	s := &eventService{
		eventRepo:      eventRepo,
		effect:         effect,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
		newID:          newEventID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newEventID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *eventService) ListEvents(ctx context.Context, criteria domain.FilterCriteria) (*domain.EventList, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	filtered := catalog.Filter(events, criteria)
	return &domain.EventList{
		Events: filtered,
		Stats:  catalog.Summarize(filtered),
	}, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return &domain.EventDetail{
		Event:       *event,
		TypeLabel:   event.EventType.Label(),
		DisplayDate: catalog.FormatDate(event.EventDate),
		Upcoming:    catalog.IsUpcoming(event.EventDate, s.now()),
		Related:     catalog.Related(events, *event, catalog.MaxRelated),
	}, nil
}

func (s *eventService) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return &domain.FilterOptions{
		EventTypes: catalog.TypeOptions(),
		Colleges:   catalog.CollegeOptions(events),
	}, nil
}

// SubmitEvent validates raw and hands the resulting event to the submission
// effect. Validation failures are returned as domain.FieldErrors and the effect
// is not invoked. The catalog is never modified.
func (s *eventService) SubmitEvent(ctx context.Context, raw domain.RawSubmission) (*domain.Submission, error) {
	event, err := validation.Validate(raw)
	if err != nil {
		return nil, err
	}
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate event id: %w", err)
	}
	event.ID = id

	if err := s.effect.Submit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event submission failed", "event_id", event.ID, "err", err)
		if errors.Is(err, domain.ErrSubmissionFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("submit event: %w", err)
	}
	s.logger.InfoContext(ctx, "event submitted for review", "event_id", event.ID, "event_name", event.EventName)
	return &domain.Submission{
		Event:       event,
		Status:      domain.SubmissionStatusPendingReview,
		Message:     submissionAcceptedMessage,
		SubmittedAt: s.now(),
	}, nil
}
