package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/docpost"
	"github.com/aretw0/docpost/internal/config"
)

// createProcessor builds a Processor from the resolved configuration.
func createProcessor(cfg config.Config, logger *slog.Logger, dryRun bool, hooks docpost.Hooks) *docpost.Processor {
	return docpost.New(
		docpost.WithLogger(logger),
		docpost.WithDryRun(dryRun),
		docpost.WithTrimLines(cfg.TrimLines),
		docpost.WithHeadingDir(cfg.HeadingDir),
		docpost.WithRemoveDirs(cfg.RemoveDirs...),
		docpost.WithRemoveFiles(cfg.RemoveFiles...),
		docpost.WithHooks(hooks),
	)
}

// createHooks prints one line per step when verbose is set.
func createHooks(w io.Writer, verbose, dryRun bool) docpost.Hooks {
	if !verbose {
		return docpost.Hooks{}
	}
	prefix := ""
	if dryRun {
		prefix = "(dry-run) "
	}
	return docpost.Hooks{
		OnRemove: func(path string) {
			fmt.Fprintf(w, "%sremove %s\n", prefix, path)
		},
		OnFile: func(r docpost.FileResult) {
			if r.HeadingPass {
				fmt.Fprintf(w, "%strim %d, demote %d: %s\n", prefix, r.LinesTrimmed, r.HeadingsDemoted, r.Path)
				return
			}
			fmt.Fprintf(w, "%strim %d: %s\n", prefix, r.LinesTrimmed, r.Path)
		},
	}
}
