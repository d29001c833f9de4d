package domain

// Sentinel criteria values meaning "no constraint".
const (
	AllEventTypes = "all"
	AllColleges   = "All Colleges"
)

// FilterCriteria narrows the catalog for display. Empty fields are not applied;
// EventType "all" and College "All Colleges" are not applied either.
// DateFrom and DateTo are inclusive ISO dates compared as strings.
type FilterCriteria struct {
	SearchTerm string `json:"searchTerm"`
	EventType  string `json:"eventType"`
	College    string `json:"college"`
	Location   string `json:"location"`
	DateFrom   string `json:"dateFrom"`
	DateTo     string `json:"dateTo"`
}

// DefaultCriteria returns the cleared filter state.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		EventType: AllEventTypes,
		College:   AllColleges,
	}
}

// EventStats summarises a filtered result for the dashboard.
type EventStats struct {
	Total      int `json:"total"`
	Hackathons int `json:"hackathons"`
	TechTalks  int `json:"techTalks"`
	Workshops  int `json:"workshops"`
}

// EventList is the filtered, date-ordered dashboard listing.
type EventList struct {
	Events []Event    `json:"events"`
	Stats  EventStats `json:"stats"`
}

// Option is a selectable filter value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions holds the choices offered by the filter bar.
type FilterOptions struct {
	EventTypes []Option `json:"eventTypes"`
	Colleges   []string `json:"colleges"`
}
