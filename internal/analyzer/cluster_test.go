package analyzer

import (
	"testing"

	"github.com/alexanderramin/timeglass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster_Empty(t *testing.T) {
	assert.Empty(t, Cluster(nil, 30))
	assert.Empty(t, Cluster([]int64{}, 30))
}

func TestCluster_SingleTimestamp(t *testing.T) {
	sessions := Cluster([]int64{1_770_000_000_000}, 30)

	require.Len(t, sessions, 1)
	assert.Equal(t, int64(1_770_000_000_000), sessions[0].Start)
	assert.Equal(t, int64(1_770_000_000_000), sessions[0].End)
	assert.Equal(t, 1, sessions[0].Requests)
	assert.Equal(t, int64(0), sessions[0].RawDuration())
	assert.Equal(t, domain.MinSessionMs, sessions[0].EffectiveDuration(), "single request floors to 5 minutes")
}

func TestCluster_AllIdentical(t *testing.T) {
	ts := []int64{5_000, 5_000, 5_000, 5_000}

	sessions := Cluster(ts, 30)

	require.Len(t, sessions, 1)
	assert.Equal(t, 4, sessions[0].Requests)
	assert.Equal(t, int64(0), sessions[0].RawDuration())
	assert.Equal(t, domain.MinSessionMs, sessions[0].EffectiveDuration())
}

func TestCluster_SplitsOnGapStrictlyGreater(t *testing.T) {
	const gapMs = 30 * 60 * 1000

	tests := []struct {
		name     string
		ts       []int64
		wantLen  int
		wantReqs []int
	}{
		{
			name:     "gap exactly at threshold does not split",
			ts:       []int64{0, gapMs},
			wantLen:  1,
			wantReqs: []int{2},
		},
		{
			name:     "gap one ms over threshold splits",
			ts:       []int64{0, gapMs + 1},
			wantLen:  2,
			wantReqs: []int{1, 1},
		},
		{
			name:     "gap measured from session end, not start",
			ts:       []int64{0, gapMs, 2 * gapMs},
			wantLen:  1,
			wantReqs: []int{3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sessions := Cluster(tc.ts, 30)

			require.Len(t, sessions, tc.wantLen)
			for i, want := range tc.wantReqs {
				assert.Equal(t, want, sessions[i].Requests, "session %d request count", i)
			}
		})
	}
}

// Two points 60s apart, one point 1h later, 30-minute gap: two sessions,
// both floor-clamped to 5 minutes.
func TestCluster_TwoBurstsAnHourApart(t *testing.T) {
	ts := []int64{1_770_000_000_000, 1_770_000_060_000, 1_770_003_600_000}

	sessions := Cluster(ts, 30)

	require.Len(t, sessions, 2)
	assert.Equal(t, domain.Session{Start: 1_770_000_000_000, End: 1_770_000_060_000, Requests: 2}, sessions[0])
	assert.Equal(t, domain.Session{Start: 1_770_003_600_000, End: 1_770_003_600_000, Requests: 1}, sessions[1])
	assert.Equal(t, domain.MinSessionMs, sessions[0].EffectiveDuration())
	assert.Equal(t, domain.MinSessionMs, sessions[1].EffectiveDuration())
}

// A huge gap value is the documented way to disable splitting entirely.
func TestCluster_HugeGapYieldsOneSession(t *testing.T) {
	sessions := Cluster([]int64{1_000, 2_000, 3_000}, 99999)

	require.Len(t, sessions, 1)
	assert.Equal(t, int64(1_000), sessions[0].Start)
	assert.Equal(t, int64(3_000), sessions[0].End)
	assert.Equal(t, 3, sessions[0].Requests)
	assert.Equal(t, domain.MinSessionMs, sessions[0].EffectiveDuration())
}

func TestCluster_EveryGapExceedsThreshold(t *testing.T) {
	const gapMs = int64(60 * 1000)
	ts := []int64{0, 2 * gapMs, 4 * gapMs, 6 * gapMs}

	sessions := Cluster(ts, 1)

	require.Len(t, sessions, 4)
	for i, s := range sessions {
		assert.Equal(t, 1, s.Requests, "session %d", i)
		assert.Equal(t, s.Start, s.End, "session %d", i)
	}
}
