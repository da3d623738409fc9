package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/docpost"
	"github.com/aretw0/docpost/internal/presentation/tui"
)

func TestPrintSummary(t *testing.T) {
	report := &docpost.Report{
		Root:    "docs",
		Removed: []string{"docs/modules"},
		Files: []docpost.FileResult{
			{Path: "docs/a.md"},
			{Path: "docs/classes/b.md", HeadingPass: true, HeadingsDemoted: 4},
		},
	}

	t.Run("run", func(t *testing.T) {
		var buf bytes.Buffer
		tui.PrintSummary(&buf, report)

		assert.Equal(t,
			">>> Removed 'docs/modules'\n"+
				">>> Processed 2 markdown files under 'docs' (4 headings demoted in 1 files).\n",
			buf.String())
	})

	t.Run("dry run", func(t *testing.T) {
		dry := *report
		dry.DryRun = true

		var buf bytes.Buffer
		tui.PrintSummary(&buf, &dry)

		assert.Contains(t, buf.String(), ">>> Would remove 'docs/modules'\n")
		assert.Contains(t, buf.String(), ">>> Would process 2 markdown files")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		tui.PrintSummary(&buf, &docpost.Report{Root: "docs"})

		assert.Equal(t, ">>> Processed 0 markdown files under 'docs' (0 headings demoted in 0 files).\n", buf.String())
	})
}
