// Package catalog holds the pure operations over the event catalog: filtering,
// related-event lookup, dashboard stats and display helpers. Nothing here does I/O
// or mutates its input.
package catalog

import (
	"slices"
	"strings"

	"collegeevents/internal/domain"
)

// predicate reports whether an event survives a filter stage.
type predicate func(e *domain.Event) bool

// Filter returns the events of c matching every applicable criterion, ordered by
// EventDate ascending. Events with the same date keep their catalog order.
// The result is a new slice; c is never modified. No match yields an empty,
// non-nil slice.
func Filter(c []domain.Event, k domain.FilterCriteria) []domain.Event {
	stages := stagesFor(k)
	out := make([]domain.Event, 0, len(c))
	for i := range c {
		if matchesAll(&c[i], stages) {
			out = append(out, c[i])
		}
	}
	SortByDate(out)
	return out
}

// SortByDate stably orders events by EventDate, earliest first.
func SortByDate(events []domain.Event) {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return strings.Compare(a.EventDate, b.EventDate)
	})
}

func matchesAll(e *domain.Event, stages []predicate) bool {
	for _, keep := range stages {
		if !keep(e) {
			return false
		}
	}
	return true
}

// stagesFor builds the predicates that apply to k. Search and location terms are
// matched as raw substrings (no trimming); dates are compared lexicographically.
func stagesFor(k domain.FilterCriteria) []predicate {
	var stages []predicate

	if k.SearchTerm != "" {
		term := strings.ToLower(k.SearchTerm)
		stages = append(stages, func(e *domain.Event) bool {
			return strings.Contains(strings.ToLower(e.EventName), term) ||
				strings.Contains(strings.ToLower(e.Description), term) ||
				strings.Contains(strings.ToLower(e.College), term)
		})
	}
	if k.EventType != "" && k.EventType != domain.AllEventTypes {
		stages = append(stages, func(e *domain.Event) bool {
			return string(e.EventType) == k.EventType
		})
	}
	if k.College != "" && k.College != domain.AllColleges {
		stages = append(stages, func(e *domain.Event) bool {
			return e.College == k.College
		})
	}
	if k.Location != "" {
		loc := strings.ToLower(k.Location)
		stages = append(stages, func(e *domain.Event) bool {
			return strings.Contains(strings.ToLower(e.Location), loc)
		})
	}
	if k.DateFrom != "" {
		stages = append(stages, func(e *domain.Event) bool {
			return e.EventDate >= k.DateFrom
		})
	}
	if k.DateTo != "" {
		stages = append(stages, func(e *domain.Event) bool {
			return e.EventDate <= k.DateTo
		})
	}
	return stages
}
