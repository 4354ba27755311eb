package domain

// DailyBucket aggregates all sessions whose start falls on the same local
// calendar date.
type DailyBucket struct {
	Date        string // "2006-01-02"
	EffectiveMs int64
	Sessions    int
	Requests    int
}

// Summary holds the overall figures derived from a finalized session list.
type Summary struct {
	TotalEffectiveMs int64
	SessionCount     int
	RequestCount     int
	AvgSessionMs     int64
	TotalHours       float64
	WorkingDays      int
}

// Report is the complete, immutable result of analyzing one capture file.
// Sessions always holds the full list; any display cap is a renderer
// concern.
type Report struct {
	Path          string
	FileSizeBytes int64
	FirstTs       int64
	LastTs        int64
	Sessions      []Session
	Days          []DailyBucket
	Summary       Summary
}
