package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/timeglass/internal/analyzer"
	"github.com/alexanderramin/timeglass/internal/domain"
	"github.com/google/uuid"
)

type analysisService struct {
	source   TimestampSource
	observer UseCaseObserver
}

// NewAnalysisService wires a TimestampSource into the analysis use case.
func NewAnalysisService(source TimestampSource, observers ...UseCaseObserver) AnalysisService {
	return &analysisService{
		source:   source,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	started := time.Now()
	runID := uuid.NewString()

	result, err := s.analyze(ctx, req, runID)

	event := UseCaseEvent{
		Name:      "analyze_capture",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"run_id": runID,
			"path":   req.Path,
		},
	}
	if result != nil {
		event.Fields["timestamps"] = result.TimestampCount
		event.Fields["no_data"] = result.NoData
		if result.Report != nil {
			event.Fields["sessions"] = result.Report.Summary.SessionCount
			event.Fields["total_hours"] = result.Report.Summary.TotalHours
			event.Fields["working_days"] = result.Report.Summary.WorkingDays
		}
	}
	s.observer.ObserveUseCase(ctx, event)

	return result, err
}

func (s *analysisService) analyze(ctx context.Context, req AnalysisRequest, runID string) (*AnalysisResult, error) {
	gap := req.GapMinutes
	if gap <= 0 {
		gap = DefaultGapMinutes
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("stat capture file: %w", err)
	}

	timestamps, err := s.source.Extract(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("extracting timestamps: %w", err)
	}

	result := &AnalysisResult{
		RunID:          runID,
		GapMinutes:     gap,
		TimestampCount: len(timestamps),
	}

	if len(timestamps) == 0 {
		result.NoData = true
		return result, nil
	}

	sessions := analyzer.Cluster(timestamps, gap)
	days := analyzer.AggregateDaily(sessions)

	result.Report = &domain.Report{
		Path:          req.Path,
		FileSizeBytes: info.Size(),
		FirstTs:       timestamps[0],
		LastTs:        timestamps[len(timestamps)-1],
		Sessions:      sessions,
		Days:          days,
		Summary:       analyzer.Summarize(sessions, days, len(timestamps)),
	}

	return result, nil
}
