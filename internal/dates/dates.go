// Package dates is the single authority for calendar-day bucketing.
// Every write and read path that needs "which day does this belong to"
// must go through Key or Today; ad-hoc date math elsewhere is a defect.
package dates

import "time"

// Layout is the canonical day-key format.
const Layout = "2006-01-02"

// Key returns the local calendar-day bucket for an instant, zero-padded.
// The instant's own location is converted to the server's local timezone
// first, so two representations of the same local day always agree.
func Key(t time.Time) string {
	return t.Local().Format(Layout)
}

// Today returns the bucket for the current instant.
func Today() string {
	return Key(time.Now())
}

// Valid reports whether s parses as a canonical day key.
func Valid(s string) bool {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return false
	}
	return t.Format(Layout) == s
}
