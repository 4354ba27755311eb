package analyzer

import (
	"testing"
	"time"

	"github.com/alexanderramin/timeglass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localMs builds an epoch-ms timestamp from a local calendar time so the
// expected daily grouping holds in any test time zone.
func localMs(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local).UnixMilli()
}

func TestAggregateDaily_GroupsByLocalStartDate(t *testing.T) {
	sessions := []domain.Session{
		{Start: localMs(2026, 2, 1, 9, 0), End: localMs(2026, 2, 1, 10, 0), Requests: 40},
		{Start: localMs(2026, 2, 1, 14, 0), End: localMs(2026, 2, 1, 14, 1), Requests: 3},
		{Start: localMs(2026, 2, 3, 11, 0), End: localMs(2026, 2, 3, 12, 30), Requests: 80},
	}

	days := AggregateDaily(sessions)

	require.Len(t, days, 2)

	assert.Equal(t, "2026-02-01", days[0].Date)
	assert.Equal(t, 2, days[0].Sessions)
	assert.Equal(t, 43, days[0].Requests)
	// One hour plus a floor-clamped one-minute session.
	assert.Equal(t, int64(3600_000)+domain.MinSessionMs, days[0].EffectiveMs)

	assert.Equal(t, "2026-02-03", days[1].Date)
	assert.Equal(t, 1, days[1].Sessions)
	assert.Equal(t, 80, days[1].Requests)
	assert.Equal(t, int64(90*60*1000), days[1].EffectiveMs)
}

func TestAggregateDaily_SortedByDate(t *testing.T) {
	sessions := []domain.Session{
		{Start: localMs(2026, 3, 9, 10, 0), End: localMs(2026, 3, 9, 11, 0), Requests: 1},
		{Start: localMs(2026, 1, 2, 10, 0), End: localMs(2026, 1, 2, 11, 0), Requests: 1},
		{Start: localMs(2026, 2, 5, 10, 0), End: localMs(2026, 2, 5, 11, 0), Requests: 1},
	}

	days := AggregateDaily(sessions)

	require.Len(t, days, 3)
	assert.Equal(t, "2026-01-02", days[0].Date)
	assert.Equal(t, "2026-02-05", days[1].Date)
	assert.Equal(t, "2026-03-09", days[2].Date)
}

func TestAggregateDaily_Empty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}

// Daily totals must partition the grand totals exactly: the floor is
// applied once per session, never again at aggregation time.
func TestAggregateDaily_TotalsMatchSessionTotals(t *testing.T) {
	sessions := []domain.Session{
		{Start: localMs(2026, 2, 1, 9, 0), End: localMs(2026, 2, 1, 9, 0), Requests: 1},
		{Start: localMs(2026, 2, 1, 12, 0), End: localMs(2026, 2, 1, 13, 45), Requests: 200},
		{Start: localMs(2026, 2, 2, 8, 30), End: localMs(2026, 2, 2, 8, 32), Requests: 9},
		{Start: localMs(2026, 2, 4, 22, 0), End: localMs(2026, 2, 4, 23, 59), Requests: 51},
	}

	days := AggregateDaily(sessions)

	var wantTotal int64
	for _, s := range sessions {
		wantTotal += s.EffectiveDuration()
	}

	var gotTotal int64
	gotSessions, gotRequests := 0, 0
	for _, d := range days {
		gotTotal += d.EffectiveMs
		gotSessions += d.Sessions
		gotRequests += d.Requests
	}

	assert.Equal(t, wantTotal, gotTotal)
	assert.Equal(t, len(sessions), gotSessions)
	assert.Equal(t, 261, gotRequests)
}
