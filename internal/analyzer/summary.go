package analyzer

import "github.com/alexanderramin/timeglass/internal/domain"

// Summarize derives the overall figures from a finalized session list and
// its daily aggregation. timestampCount is the total number of extracted
// timestamps (equal to the sum of session request counts).
func Summarize(sessions []domain.Session, days []domain.DailyBucket, timestampCount int) domain.Summary {
	var total int64
	for _, s := range sessions {
		total += s.EffectiveDuration()
	}

	divisor := len(sessions)
	if divisor < 1 {
		divisor = 1
	}

	return domain.Summary{
		TotalEffectiveMs: total,
		SessionCount:     len(sessions),
		RequestCount:     timestampCount,
		AvgSessionMs:     total / int64(divisor),
		TotalHours:       float64(total) / (1000 * 3600),
		WorkingDays:      len(days),
	}
}
