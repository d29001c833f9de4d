package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"collegeevents/internal/delivery/http/helpers"
	"collegeevents/internal/domain"
)

// EventListSuccessResponse is the success response envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  *domain.EventList `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FilterOptionsSuccessResponse is the success response envelope for GET /events/options (200).
type FilterOptionsSuccessResponse struct {
	Data  *domain.FilterOptions `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// EventDetailSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type EventDetailSuccessResponse struct {
	Data  *domain.EventDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SubmissionSuccessResponse is the success response envelope for POST /events/submissions (202).
type SubmissionSuccessResponse struct {
	Data  *domain.Submission `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns the catalog narrowed by every supplied criterion, ordered by date ascending, with per-type counts of the result. Empty criteria, eventType=all and college=All Colleges apply no constraint.
// @Tags events
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring of name, description or college"
// @Param eventType query string false "hackathon, tech-talk, workshop or all"
// @Param college query string false "Exact college name or All Colleges"
// @Param location query string false "Case-insensitive substring of the location"
// @Param dateFrom query string false "Inclusive lower bound, YYYY-MM-DD"
// @Param dateTo query string false "Inclusive upper bound, YYYY-MM-DD"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains events and stats"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListEvents(r.Context(), helpers.ParseCriteria(r))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// FilterOptions godoc
// @Summary Filter choices
// @Description Returns the event types and colleges offered by the filter bar. Colleges start with All Colleges followed by each distinct catalog college in first-appearance order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.FilterOptionsSuccessResponse "data contains eventTypes and colleges"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/options [get]
func (c *EventController) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := c.Service.FilterOptions(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, opts)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event with its display fields and up to four related events sharing its type or college.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventDetailSuccessResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	detail, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// SubmitEvent godoc
// @Summary Submit an event for review
// @Description Validates the form and forwards the event for review. Every violated field is reported at once. Accepted events are not added to the catalog.
// @Tags events
// @Accept json
// @Produce json
// @Param submission body domain.RawSubmission true "Event form"
// @Success 202 {object} controllers.SubmissionSuccessResponse "data contains the pending submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 503 {object} helpers.APIResponse "error.code: submission_failed, safe to retry"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/submissions [post]
func (c *EventController) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawSubmission
	if !helpers.DecodeAndValidate(w, r, &raw) {
		return
	}
	submission, err := c.Service.SubmitEvent(r.Context(), raw)
	if err != nil {
		var fieldErrs domain.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			helpers.WriteValidationError(w, fieldErrs)
		case errors.Is(err, domain.ErrSubmissionFailed):
			helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeSubmissionFailed, domain.ErrSubmissionFailed.Error())
		default:
			c.internalError(w, r, err)
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, submission)
}

func (c *EventController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}
