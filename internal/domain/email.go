package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SubmissionReviewEmailData holds data for the email asking a moderator to review a submission.
type SubmissionReviewEmailData struct {
	To          string
	EventID     string
	EventName   string
	EventDate   string
	TypeLabel   string
	College     string
	Location    string
	Link        string
	Description string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSubmissionReview(ctx context.Context, data *SubmissionReviewEmailData) error
}
