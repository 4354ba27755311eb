package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

const (
	timestampDigits = 13
	readChunkBytes  = 1 << 20
)

// Scanner extracts plausible epoch-millisecond timestamps from a capture
// file by scanning sampled regions for 13-digit decimal runs. It is the
// concrete Timestamp Source: best-effort, lossy above the sampling
// threshold, never guaranteed complete.
type Scanner struct {
	policy   SamplingPolicy
	observer RegionObserver
}

// NewScanner builds a Scanner with the given policy. A nil observer is
// replaced with a no-op.
func NewScanner(policy SamplingPolicy, observer RegionObserver) *Scanner {
	if observer == nil {
		observer = NoopRegionObserver{}
	}
	return &Scanner{policy: policy, observer: observer}
}

// Extract returns the sorted, deduplicated timestamps found in the
// sampled regions of the file at path. A region that fails or exceeds the
// region timeout contributes nothing and is skipped; only opening or
// stat-ing the file itself is a hard error. An empty result with a nil
// error means no plausible timestamps were found.
func (s *Scanner) Extract(ctx context.Context, path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening capture file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat capture file: %w", err)
	}

	offsets := s.policy.RegionOffsets(info.Size())
	seen := make(map[int64]struct{})

	for _, offset := range offsets {
		regionCtx, cancel := context.WithTimeout(ctx, s.policy.RegionTimeout)
		started := time.Now()
		found, err := s.scanRegion(regionCtx, f, offset, info.Size())
		cancel()

		event := RegionEvent{
			Path:     path,
			Offset:   offset,
			Duration: time.Since(started),
			Found:    len(found),
			Err:      err,
		}
		s.observer.ObserveRegion(ctx, event)
		if err != nil {
			// Best-effort: a failed or timed-out region yields nothing.
			continue
		}
		for _, ts := range found {
			seen[ts] = struct{}{}
		}
	}

	result := make([]int64, 0, len(seen))
	for ts := range seen {
		result = append(result, ts)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return result, nil
}

// scanRegion reads one sampling window in chunks and collects plausible
// timestamps. Digit runs are carried across chunk boundaries so values
// straddling a read are not lost within the region.
func (s *Scanner) scanRegion(ctx context.Context, r io.ReaderAt, offset, fileSize int64) ([]int64, error) {
	end := offset + s.policy.WindowSize
	if end > fileSize {
		end = fileSize
	}

	var found []int64
	var carry []byte

	buf := make([]byte, readChunkBytes)
	for pos := offset; pos < end; pos += readChunkBytes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		want := end - pos
		if want > readChunkBytes {
			want = readChunkBytes
		}
		n, err := r.ReadAt(buf[:want], pos)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading region at %d: %w", pos, err)
		}
		if n == 0 {
			break
		}

		chunk := buf[:n]
		if len(carry) > 0 {
			chunk = append(carry, chunk...)
		}
		values, tail := s.scanDigits(chunk)
		found = append(found, values...)
		carry = append(carry[:0], tail...)
	}

	return found, nil
}

// scanDigits walks buf for runs of ASCII digits and emits the value of
// every non-overlapping 13-digit window that falls inside the plausible
// range. When a run is cut off by the end of the buffer its last 12
// digits are returned so the caller can prepend them to the next chunk;
// duplicates from the overlap are suppressed by the caller's set.
func (s *Scanner) scanDigits(buf []byte) (values []int64, tail []byte) {
	i := 0
	for i < len(buf) {
		if !isDigit(buf[i]) {
			i++
			continue
		}

		runStart := i
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
		run := buf[runStart:i]

		values = append(values, s.windowValues(run)...)

		if i == len(buf) {
			if len(run) > timestampDigits-1 {
				run = run[len(run)-(timestampDigits-1):]
			}
			tail = run
		}
	}
	return values, tail
}

// windowValues extracts in-range 13-digit values from one digit run,
// advancing past a match so emitted windows never overlap.
func (s *Scanner) windowValues(run []byte) []int64 {
	var values []int64
	for i := 0; i+timestampDigits <= len(run); {
		v := digitsValue(run[i : i+timestampDigits])
		if v >= s.policy.MinValue && v <= s.policy.MaxValue {
			values = append(values, v)
			i += timestampDigits
			continue
		}
		i++
	}
	return values
}

func digitsValue(d []byte) int64 {
	var v int64
	for _, b := range d {
		v = v*10 + int64(b-'0')
	}
	return v
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
