package domain

import "time"

// MinSessionMs is the effective-duration floor applied to every session.
// Even a single-request session counts as 5 minutes of work.
const MinSessionMs int64 = 5 * 60 * 1000

// Session is one contiguous burst of activity: a maximal run of request
// timestamps where no consecutive gap exceeds the configured threshold.
// Start and End are epoch milliseconds. Immutable once finalized.
type Session struct {
	Start    int64
	End      int64
	Requests int
}

// RawDuration returns End - Start in milliseconds.
func (s Session) RawDuration() int64 {
	return s.End - s.Start
}

// EffectiveDuration returns the raw duration clamped to the MinSessionMs
// floor. This is the single value used everywhere a session's duration is
// displayed or summed.
func (s Session) EffectiveDuration() int64 {
	if d := s.RawDuration(); d > MinSessionMs {
		return d
	}
	return MinSessionMs
}

// StartTime returns the session start as a local time.Time.
func (s Session) StartTime() time.Time {
	return time.UnixMilli(s.Start)
}

// EndTime returns the session end as a local time.Time.
func (s Session) EndTime() time.Time {
	return time.UnixMilli(s.End)
}

// DateKey returns the local calendar date of the session start, used as
// the daily aggregation key.
func (s Session) DateKey() string {
	return s.StartTime().Format("2006-01-02")
}
