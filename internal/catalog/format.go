package catalog

import "time"

// DateLayout is the ISO 8601 calendar date layout used by EventDate.
const DateLayout = "2006-01-02"

// FormatDate renders an ISO date like "Thursday, February 15, 2024".
// Input that is not a valid ISO date is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// IsUpcoming reports whether date falls on the calendar day of now or later,
// in now's location. Unparseable dates are never upcoming.
func IsUpcoming(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}
