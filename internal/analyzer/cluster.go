package analyzer

import "github.com/alexanderramin/timeglass/internal/domain"

// Cluster groups a non-decreasing sequence of epoch-millisecond timestamps
// into work sessions. A new session starts whenever the gap from the
// previous timestamp is strictly greater than gapMinutes; a gap exactly
// equal to the threshold does not split.
//
// The input must be sorted ascending; gapMinutes must be positive. Both
// are caller contracts, not validated here. Empty input yields nil.
func Cluster(timestamps []int64, gapMinutes int) []domain.Session {
	if len(timestamps) == 0 {
		return nil
	}

	gapMs := int64(gapMinutes) * 60 * 1000

	sessions := make([]domain.Session, 0, 1)
	current := domain.Session{
		Start:    timestamps[0],
		End:      timestamps[0],
		Requests: 1,
	}

	for _, ts := range timestamps[1:] {
		if ts-current.End > gapMs {
			sessions = append(sessions, current)
			current = domain.Session{Start: ts, End: ts, Requests: 1}
			continue
		}
		current.End = ts
		current.Requests++
	}

	return append(sessions, current)
}
