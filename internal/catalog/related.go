package catalog

import "collegeevents/internal/domain"

// MaxRelated caps the number of related events shown next to an event.
const MaxRelated = 4

// Related returns up to limit events of c sharing the event type or the college of
// ev, in catalog order, never including ev itself (matched by ID).
// A non-positive limit means MaxRelated.
func Related(c []domain.Event, ev domain.Event, limit int) []domain.Event {
	if limit <= 0 {
		limit = MaxRelated
	}
	out := make([]domain.Event, 0, limit)
	for _, e := range c {
		if len(out) == limit {
			break
		}
		if e.ID == ev.ID {
			continue
		}
		if e.EventType == ev.EventType || e.College == ev.College {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the event of c with the given id.
func Find(c []domain.Event, id string) (domain.Event, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}
