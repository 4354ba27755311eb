package analyzer

import (
	"testing"
	"time"

	"github.com/alexanderramin/timeglass/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Figures(t *testing.T) {
	sessions := []domain.Session{
		{Start: localMs(2026, 2, 1, 9, 0), End: localMs(2026, 2, 1, 10, 0), Requests: 10}, // 1h
		{Start: localMs(2026, 2, 2, 9, 0), End: localMs(2026, 2, 2, 9, 30), Requests: 5},  // 30m
		{Start: localMs(2026, 2, 2, 15, 0), End: localMs(2026, 2, 2, 15, 0), Requests: 1}, // floor: 5m
	}
	days := AggregateDaily(sessions)

	s := Summarize(sessions, days, 16)

	wantTotal := int64(95 * 60 * 1000)
	assert.Equal(t, wantTotal, s.TotalEffectiveMs)
	assert.Equal(t, 3, s.SessionCount)
	assert.Equal(t, 16, s.RequestCount)
	assert.Equal(t, wantTotal/3, s.AvgSessionMs)
	assert.InDelta(t, 95.0/60.0, s.TotalHours, 1e-9)
	assert.Equal(t, 2, s.WorkingDays, "distinct dates, not elapsed days")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, 0)

	assert.Equal(t, int64(0), s.TotalEffectiveMs)
	assert.Equal(t, 0, s.SessionCount)
	assert.Equal(t, int64(0), s.AvgSessionMs, "no division by zero on empty input")
	assert.Equal(t, 0.0, s.TotalHours)
	assert.Equal(t, 0, s.WorkingDays)
}

// Working days count distinct calendar dates even when the range spans
// idle days in between.
func TestSummarize_WorkingDaysSkipIdleDays(t *testing.T) {
	sessions := []domain.Session{
		{Start: localMs(2026, 2, 1, 9, 0), End: localMs(2026, 2, 1, 10, 0), Requests: 1},
		{Start: localMs(2026, 2, 20, 9, 0), End: localMs(2026, 2, 20, 10, 0), Requests: 1},
	}
	days := AggregateDaily(sessions)

	s := Summarize(sessions, days, 2)

	assert.Equal(t, 2, s.WorkingDays)
	assert.Greater(t, sessions[1].Start-sessions[0].End,
		18*24*time.Hour.Milliseconds(), "sanity: long idle stretch between the two days")
}
