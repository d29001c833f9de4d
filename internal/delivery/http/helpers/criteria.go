package helpers

import (
	"net/http"

	"collegeevents/internal/domain"
)

// Query parameters accepted by the event listing.
const (
	QuerySearchTerm = "searchTerm"
	QueryEventType  = "eventType"
	QueryCollege    = "college"
	QueryLocation   = "location"
	QueryDateFrom   = "dateFrom"
	QueryDateTo     = "dateTo"
)

// ParseCriteria reads the filter criteria from the request query string.
// Values are taken verbatim: no trimming and no date validation. Missing
// eventType and college fall back to their "no constraint" sentinels.
func ParseCriteria(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	c := domain.DefaultCriteria()
	c.SearchTerm = q.Get(QuerySearchTerm)
	c.Location = q.Get(QueryLocation)
	c.DateFrom = q.Get(QueryDateFrom)
	c.DateTo = q.Get(QueryDateTo)
	if v := q.Get(QueryEventType); v != "" {
		c.EventType = v
	}
	if v := q.Get(QueryCollege); v != "" {
		c.College = v
	}
	return c
}
