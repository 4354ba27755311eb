package formatter

import "fmt"

// FormatDuration renders a millisecond duration as "Xh Ym", "Xm Ys" or
// "Xs" depending on magnitude, truncating fractional units. Negative
// input clamps to "0s". When at least an hour, the minutes component is
// always shown even if zero.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatBytes renders a byte count as a human-readable size with two
// decimals, matching the capture-file size line of the report header.
func FormatBytes(n int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gib))
	case n >= mib:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mib))
	case n >= kib:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(kib))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
