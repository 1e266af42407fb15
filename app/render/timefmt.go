package render

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders a timestamp relative to now: "Just now" under
// a minute, then minutes, hours and days, and an absolute date once the
// timestamp is a week old. The year appears only when it differs from the
// current year. Pure: the same two inputs always produce the same output.
func FormatRelativeTime(ts, now time.Time) string {
	d := now.Sub(ts)

	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}

	if ts.Year() == now.Year() {
		return ts.Format("Jan 2")
	}
	return ts.Format("Jan 2, 2006")
}
