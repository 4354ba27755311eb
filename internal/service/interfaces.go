package service

import (
	"context"

	"github.com/alexanderramin/timeglass/internal/domain"
)

// DefaultGapMinutes is the session gap applied when a request does not
// specify one.
const DefaultGapMinutes = 30

// TimestampSource yields the sorted, deduplicated epoch-millisecond
// timestamps believed to belong to a capture file. Implementations may
// sample large files rather than scanning them exhaustively; callers must
// not assume completeness. An empty result with a nil error means no
// timestamps were found.
type TimestampSource interface {
	Extract(ctx context.Context, path string) ([]int64, error)
}

// AnalysisRequest describes one analysis run.
type AnalysisRequest struct {
	Path       string
	GapMinutes int // <= 0 means DefaultGapMinutes
}

// AnalysisResult is the outcome of one analysis run. NoData marks the
// terminal "no timestamps found" condition; Report is nil in that case.
type AnalysisResult struct {
	RunID          string
	GapMinutes     int
	TimestampCount int
	NoData         bool
	Report         *domain.Report
}

// AnalysisService turns a capture file into a work-time report.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}
