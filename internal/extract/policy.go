package extract

import "time"

// SamplingPolicy controls how a capture file is scanned for embedded
// timestamps. Files at or below LargeFileThreshold get a single window at
// the start of the file; larger files are sampled at Stride intervals
// plus a tail window, trading completeness for bounded runtime.
type SamplingPolicy struct {
	LargeFileThreshold int64
	WindowSize         int64
	Stride             int64
	RegionTimeout      time.Duration

	// Plausible epoch-millisecond range. A 13-digit window outside this
	// range is not a timestamp.
	MinValue int64
	MaxValue int64
}

// DefaultPolicy returns the sampling policy matching the historical
// behavior: 100 MiB windows every 500 MiB for files over 500 MiB, and a
// plausible range covering 13-digit values beginning with 177.
func DefaultPolicy() SamplingPolicy {
	return SamplingPolicy{
		LargeFileThreshold: 500 * 1024 * 1024,
		WindowSize:         100 * 1024 * 1024,
		Stride:             500 * 1024 * 1024,
		RegionTimeout:      120 * time.Second,
		MinValue:           1_770_000_000_000,
		MaxValue:           1_779_999_999_999,
	}
}

// RegionOffsets returns the sorted, deduplicated window start offsets to
// scan for a file of the given size. Small files yield a single region at
// offset 0; large files yield offset 0, every Stride bytes while a full
// window still fits, and a tail window.
func (p SamplingPolicy) RegionOffsets(fileSize int64) []int64 {
	if fileSize <= p.LargeFileThreshold {
		return []int64{0}
	}

	offsets := []int64{0}
	for pos := p.Stride; pos < fileSize-p.WindowSize; pos += p.Stride {
		offsets = append(offsets, pos)
	}

	tail := fileSize - p.WindowSize
	if tail < 0 {
		tail = 0
	}
	if offsets[len(offsets)-1] != tail {
		offsets = append(offsets, tail)
	}

	return offsets
}
