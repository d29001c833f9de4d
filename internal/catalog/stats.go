package catalog

import "collegeevents/internal/domain"

// Summarize counts events per type for the dashboard header.
func Summarize(events []domain.Event) domain.EventStats {
	s := domain.EventStats{Total: len(events)}
	for _, e := range events {
		switch e.EventType {
		case domain.EventTypeHackathon:
			s.Hackathons++
		case domain.EventTypeTechTalk:
			s.TechTalks++
		case domain.EventTypeWorkshop:
			s.Workshops++
		}
	}
	return s
}

// TypeOptions returns the event type choices, led by the "all" sentinel.
func TypeOptions() []domain.Option {
	opts := []domain.Option{{Value: domain.AllEventTypes, Label: "All Types"}}
	for _, t := range domain.EventTypes {
		opts = append(opts, domain.Option{Value: string(t), Label: t.Label()})
	}
	return opts
}

// CollegeOptions returns "All Colleges" followed by each distinct college of c in
// the order it first appears.
func CollegeOptions(c []domain.Event) []string {
	seen := make(map[string]struct{}, len(c))
	out := []string{domain.AllColleges}
	for _, e := range c {
		if _, ok := seen[e.College]; ok {
			continue
		}
		seen[e.College] = struct{}{}
		out = append(out, e.College)
	}
	return out
}
