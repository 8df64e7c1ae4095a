package engine

import "time"

// Within reports whether now falls strictly inside window after since
// A zero since means the event never happened and is never within any window
func Within(window time.Duration, since, now time.Time) bool {
	if since.IsZero() {
		return false
	}
	return now.Sub(since) < window
}
