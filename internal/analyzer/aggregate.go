package analyzer

import (
	"sort"

	"github.com/alexanderramin/timeglass/internal/domain"
)

// AggregateDaily groups finalized sessions by the local calendar date of
// their start, summing effective durations and counting sessions and
// requests. Buckets are returned in ascending date order.
func AggregateDaily(sessions []domain.Session) []domain.DailyBucket {
	byDate := make(map[string]*domain.DailyBucket)

	for _, s := range sessions {
		key := s.DateKey()
		b, ok := byDate[key]
		if !ok {
			b = &domain.DailyBucket{Date: key}
			byDate[key] = b
		}
		b.EffectiveMs += s.EffectiveDuration()
		b.Sessions++
		b.Requests += s.Requests
	}

	buckets := make([]domain.DailyBucket, 0, len(byDate))
	for _, b := range byDate {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})

	return buckets
}
