package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeglass/internal/cli/formatter"
	"github.com/alexanderramin/timeglass/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces used by CLI commands.
type App struct {
	Analysis service.AnalysisService

	// Defaults loaded from config; flags override them.
	DefaultGapMinutes  int
	DefaultMaxSessions int
}

// NewRootCmd creates the top-level "timeglass" command. The capture file
// is a required positional argument; analysis runs directly on the root
// command.
func NewRootCmd(app *App) *cobra.Command {
	var gapMinutes int
	var maxSessions int

	root := &cobra.Command{
		Use:   "timeglass <capture-file>",
		Short: "Estimate work time from timestamps embedded in a proxy capture file",
		Long: "timeglass mines embedded request timestamps from a proxy-tool capture\n" +
			"file, clusters them into work sessions and reports per-day and overall\n" +
			"work-time estimates.\n\n" +
			"Use a very large --gap value (e.g. 99999) to treat the whole file as a\n" +
			"single session.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.AnalysisRequest{
				Path:       args[0],
				GapMinutes: gapMinutes,
			}

			result, err := app.Analysis.Analyze(context.Background(), req)
			if err != nil {
				return err
			}

			if result.NoData {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNoData(req.Path))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(result.Report, result.GapMinutes, maxSessions))
			return nil
		},
	}

	gapDefault := app.DefaultGapMinutes
	if gapDefault <= 0 {
		gapDefault = service.DefaultGapMinutes
	}
	maxDefault := app.DefaultMaxSessions
	if maxDefault <= 0 {
		maxDefault = 30
	}

	root.Flags().IntVar(&gapMinutes, "gap", gapDefault, "Minutes of inactivity that starts a new session")
	root.Flags().IntVar(&maxSessions, "max-sessions", maxDefault, "Maximum session rows to display (0 = all)")

	return root
}
