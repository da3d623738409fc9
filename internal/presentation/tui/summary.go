package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/docpost"
)

// PrintSummary writes a short, colored account of report to w.
// Colors are dropped when w is not a terminal.
func PrintSummary(w io.Writer, report *docpost.Report) {
	out := termenv.NewOutput(w)
	removeVerb, processVerb := "Removed", "Processed"
	if report.DryRun {
		removeVerb, processVerb = "Would remove", "Would process"
	}

	for _, path := range report.Removed {
		label := out.String(removeVerb).Foreground(out.Color("#fb7185"))
		fmt.Fprintf(w, ">>> %s '%s'\n", label, path)
	}

	label := out.String(processVerb).Foreground(out.Color("#818cf8"))
	fmt.Fprintf(w, ">>> %s %d markdown files under '%s' (%d headings demoted in %d files).\n",
		label, len(report.Files), report.Root, report.HeadingsDemoted(), report.HeadingFiles())
}
