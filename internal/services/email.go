package services

import (
	"context"
	"fmt"
	"log/slog"

	"collegeevents/internal/domain"
)

const submissionReviewTemplate = "submission_review"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendSubmissionReview asks a moderator to review a submitted event.
func (s *emailService) SendSubmissionReview(ctx context.Context, data *domain.SubmissionReviewEmailData) error {
	if data == nil {
		return fmt.Errorf("submission review data is nil")
	}
	if data.To == "" {
		return fmt.Errorf("submission review recipient is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(submissionReviewTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", submissionReviewTemplate, err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send submission review email: %w", err)
	}
	s.logger.InfoContext(ctx, "submission review email sent", "to", data.To, "event_id", data.EventID)
	return nil
}
