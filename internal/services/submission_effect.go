package services

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"collegeevents/internal/domain"
)

type simulatedBackend struct {
	delay       time.Duration
	failureRate float64
	randFloat   func() float64
	logger      *slog.Logger
}

// NewSimulatedBackend returns a SubmissionEffect standing in for a backend call:
// it waits delay, then fails with domain.ErrSubmissionFailed with probability
// failureRate. randFloat must return values in [0, 1); nil uses math/rand/v2.
func NewSimulatedBackend(delay time.Duration, failureRate float64, randFloat func() float64, logger *slog.Logger) domain.SubmissionEffect {
	if randFloat == nil {
		randFloat = rand.Float64
	}
	return &simulatedBackend{
		delay:       delay,
		failureRate: failureRate,
		randFloat:   randFloat,
		logger:      logger,
	}
}

func (b *simulatedBackend) Submit(ctx context.Context, event domain.Event) error {
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if b.randFloat() < b.failureRate {
		b.logger.DebugContext(ctx, "simulated backend rejected submission", "event_id", event.ID)
		return domain.ErrSubmissionFailed
	}
	return nil
}

type reviewNotifier struct {
	next         domain.SubmissionEffect
	emailService domain.EmailService
	reviewer     string
	logger       *slog.Logger
}

// NewReviewNotifier wraps next so that every submission it accepts is emailed to
// reviewer. Email failures are logged and never fail the submission.
func NewReviewNotifier(next domain.SubmissionEffect, emailService domain.EmailService, reviewer string, logger *slog.Logger) domain.SubmissionEffect {
	return &reviewNotifier{
		next:         next,
		emailService: emailService,
		reviewer:     reviewer,
		logger:       logger,
	}
}

func (n *reviewNotifier) Submit(ctx context.Context, event domain.Event) error {
	if err := n.next.Submit(ctx, event); err != nil {
		return err
	}
	data := &domain.SubmissionReviewEmailData{
		To:          n.reviewer,
		EventID:     event.ID,
		EventName:   event.EventName,
		EventDate:   event.EventDate,
		TypeLabel:   event.EventType.Label(),
		College:     event.College,
		Location:    event.Location,
		Link:        event.Link,
		Description: event.Description,
	}
	if err := n.emailService.SendSubmissionReview(ctx, data); err != nil {
		n.logger.ErrorContext(ctx, "review notification failed", "event_id", event.ID, "err", err)
	}
	return nil
}
