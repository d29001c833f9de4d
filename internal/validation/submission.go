// Package validation checks event submissions against the form schema.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"collegeevents/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so callers can key errors by form field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldLabels are the human names used in messages.
var fieldLabels = map[string]string{
	"eventName":   "Event name",
	"eventDate":   "Event date",
	"college":     "College name",
	"location":    "Location",
	"description": "Description",
}

// Validate checks every field of raw independently. On success it returns the
// event exactly as submitted, without an id. Otherwise it returns
// domain.FieldErrors holding one entry per violated field.
func Validate(raw domain.RawSubmission) (domain.Event, error) {
	if err := validate.Struct(raw); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Event{}, err
		}
		fe := make(domain.FieldErrors, len(verrs))
		for _, v := range verrs {
			fe[v.Field()] = toFieldError(v)
		}
		return domain.Event{}, fe
	}
	return domain.Event{
		EventName:   raw.EventName,
		EventDate:   raw.EventDate,
		EventType:   raw.EventType,
		College:     raw.College,
		Location:    raw.Location,
		Link:        raw.Link,
		Description: raw.Description,
	}, nil
}

func toFieldError(v validator.FieldError) domain.FieldError {
	label := fieldLabels[v.Field()]
	switch {
	case v.Field() == "eventType":
		return domain.FieldError{Rule: domain.RuleSelectionRequired, Message: "Please select an event type"}
	case v.Tag() == "url":
		return domain.FieldError{Rule: domain.RuleInvalidURL, Message: "Please enter a valid URL"}
	case v.Tag() == "required":
		return domain.FieldError{Rule: domain.RuleRequired, Message: label + " is required"}
	case v.Tag() == "max":
		return domain.FieldError{Rule: domain.RuleTooLong, Message: label + " must be less than " + v.Param() + " characters"}
	case v.Tag() == "min":
		return domain.FieldError{Rule: domain.RuleTooShort, Message: label + " must be at least " + v.Param() + " characters"}
	default:
		return domain.FieldError{Rule: v.Tag(), Message: label + " is invalid"}
	}
}
