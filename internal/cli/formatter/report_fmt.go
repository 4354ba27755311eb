package formatter

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/timeglass/internal/domain"
)

const dayShareBarWidth = 10

// FormatReport renders a full analysis report: header, time range,
// session table (capped at maxSessions rows), summary block and per-day
// breakdown. The report itself always carries the complete session list;
// the cap is purely presentational.
func FormatReport(r *domain.Report, gapMinutes, maxSessions int) string {
	var b strings.Builder

	b.WriteString(formatHeader(r))
	b.WriteString("\n")
	b.WriteString(formatTimeRange(r))
	b.WriteString("\n")
	b.WriteString(formatSessions(r, gapMinutes, maxSessions))
	b.WriteString("\n")
	b.WriteString(formatSummary(r))
	b.WriteString("\n")
	b.WriteString(formatDaily(r))

	return b.String()
}

func formatHeader(r *domain.Report) string {
	content := fmt.Sprintf("%s\n%s",
		Bold(filepath.Base(r.Path)),
		Dim(fmt.Sprintf("File size: %s", FormatBytes(r.FileSizeBytes))),
	)
	return RenderBox("Capture Time Analysis", content) + "\n"
}

func formatTimeRange(r *domain.Report) string {
	var b strings.Builder
	b.WriteString(Header("Time Range") + "\n")

	const layout = "2006-01-02 15:04:05"
	b.WriteString(fmt.Sprintf("First request:  %s\n", StyleFg.Render(time.UnixMilli(r.FirstTs).Format(layout))))
	b.WriteString(fmt.Sprintf("Last request:   %s\n", StyleFg.Render(time.UnixMilli(r.LastTs).Format(layout))))
	b.WriteString(fmt.Sprintf("Total range:    %s\n", StyleFg.Render(FormatDuration(r.LastTs-r.FirstTs))))
	return b.String()
}

func formatSessions(r *domain.Report, gapMinutes, maxSessions int) string {
	var b strings.Builder
	b.WriteString(Header("Work Sessions") + "\n")
	b.WriteString(Dim(fmt.Sprintf("gap > %d min starts a new session", gapMinutes)) + "\n\n")

	headers := []string{"#", "DATE", "START", "END", "DURATION", "REQUESTS"}
	rows := make([][]string, 0, len(r.Sessions))
	for i, s := range r.Sessions {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			s.DateKey(),
			s.StartTime().Format("15:04"),
			s.EndTime().Format("15:04"),
			FormatDuration(s.EffectiveDuration()),
			strconv.Itoa(s.Requests),
		})
	}

	b.WriteString(RenderTableCapped(headers, rows, maxSessions, func(hidden int) string {
		return fmt.Sprintf("... (%d more sessions)", hidden)
	}))
	return b.String()
}

func formatSummary(r *domain.Report) string {
	s := r.Summary
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total work time:       %s\n", Bold(FormatDuration(s.TotalEffectiveMs))))
	b.WriteString(fmt.Sprintf("Number of sessions:    %s\n", StyleFg.Render(strconv.Itoa(s.SessionCount))))
	b.WriteString(fmt.Sprintf("Average session time:  %s\n", StyleFg.Render(FormatDuration(s.AvgSessionMs))))
	b.WriteString(fmt.Sprintf("Total requests:        %s\n", StyleFg.Render(strconv.Itoa(s.RequestCount))))
	return RenderBox("Summary", strings.TrimRight(b.String(), "\n")) + "\n"
}

func formatDaily(r *domain.Report) string {
	var b strings.Builder
	b.WriteString(Header("Work Time Per Day") + "\n\n")

	headers := []string{"DATE", "TIME", "SHARE", "SESSIONS", "REQUESTS"}
	rows := make([][]string, 0, len(r.Days)+1)

	total := r.Summary.TotalEffectiveMs
	for _, d := range r.Days {
		share := 0.0
		if total > 0 {
			share = float64(d.EffectiveMs) / float64(total)
		}
		rows = append(rows, []string{
			d.Date,
			FormatDuration(d.EffectiveMs),
			RenderShare(share, dayShareBarWidth),
			strconv.Itoa(d.Sessions),
			strconv.Itoa(d.Requests),
		})
	}
	rows = append(rows, []string{
		Bold("TOTAL"),
		Bold(FormatDuration(total)),
		"",
		Bold(strconv.Itoa(r.Summary.SessionCount)),
		Bold(strconv.Itoa(r.Summary.RequestCount)),
	})

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Estimated time: ~%.1f hours (%d working days)",
		r.Summary.TotalHours, r.Summary.WorkingDays)) + "\n")
	return b.String()
}

// FormatNoData renders the terminal "no timestamps found" notice.
func FormatNoData(path string) string {
	return StyleYellow.Render(fmt.Sprintf("No timestamps found in %s.", filepath.Base(path))) + "\n" +
		Dim("Nothing to analyze; the file may not contain plausible request timestamps.") + "\n"
}
