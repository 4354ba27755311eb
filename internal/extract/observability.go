package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

// RegionEvent captures the outcome of scanning one sampled file region.
type RegionEvent struct {
	Path     string
	Offset   int64
	Duration time.Duration
	Found    int
	Err      error
}

// RegionObserver receives per-region scan events.
type RegionObserver interface {
	ObserveRegion(ctx context.Context, event RegionEvent)
}

// NoopRegionObserver ignores all events.
type NoopRegionObserver struct{}

func (NoopRegionObserver) ObserveRegion(context.Context, RegionEvent) {}

type logRegionObserver struct {
	logger *slog.Logger
}

// NewLogRegionObserver writes region scan events to the provided writer.
func NewLogRegionObserver(w io.Writer) RegionObserver {
	if w == nil {
		return NoopRegionObserver{}
	}
	return &logRegionObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logRegionObserver) ObserveRegion(ctx context.Context, event RegionEvent) {
	attrs := []any{
		"path", event.Path,
		"offset", event.Offset,
		"duration_ms", event.Duration.Milliseconds(),
		"found", event.Found,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		if errors.Is(event.Err, context.DeadlineExceeded) {
			o.logger.WarnContext(ctx, "scan_region_timeout", attrs...)
			return
		}
		o.logger.WarnContext(ctx, "scan_region_failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "scan_region", attrs...)
}
