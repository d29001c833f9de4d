package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrSubmissionFailed is a retryable failure reported by a submission effect.
var ErrSubmissionFailed = errors.New("failed to submit event, please try again")

// SubmissionStatusPendingReview is the status of every accepted submission.
const SubmissionStatusPendingReview = "pending_review"

// RawSubmission is the event form exactly as the user filled it in.
// swagger:model RawSubmission
type RawSubmission struct {
	EventName   string    `json:"eventName" validate:"required,max=100"`
	EventDate   string    `json:"eventDate" validate:"required"`
	EventType   EventType `json:"eventType" validate:"oneof=hackathon tech-talk workshop"`
	College     string    `json:"college" validate:"required,max=100"`
	Location    string    `json:"location" validate:"required,max=100"`
	Link        string    `json:"link" validate:"url"`
	Description string    `json:"description" validate:"min=10,max=500"`
}

// Rules reported in a FieldError.
const (
	RuleRequired          = "required"
	RuleTooLong           = "too_long"
	RuleTooShort          = "too_short"
	RuleSelectionRequired = "selection_required"
	RuleInvalidURL        = "invalid_url"
)

// FieldError describes the single violated rule of one form field.
type FieldError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// FieldErrors maps a form field name (its JSON name) to its violation.
// It always covers every violated field of a submission.
type FieldErrors map[string]FieldError

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f].Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Submission is an accepted event awaiting review. It is never added to the catalog.
// swagger:model Submission
type Submission struct {
	Event       Event     `json:"event"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SubmissionEffect performs whatever side effect follows a valid submission
// (a simulated backend call, a review notification, ...).
type SubmissionEffect interface {
	Submit(ctx context.Context, event Event) error
}

// SubmissionEffectFunc adapts a function to SubmissionEffect.
type SubmissionEffectFunc func(ctx context.Context, event Event) error

func (f SubmissionEffectFunc) Submit(ctx context.Context, event Event) error {
	return f(ctx, event)
}
