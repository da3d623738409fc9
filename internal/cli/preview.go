package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/docpost"
	"github.com/aretw0/docpost/internal/config"
	"github.com/aretw0/docpost/internal/presentation/tui"
)

// PreviewOptions contains the configuration for the preview command.
type PreviewOptions struct {
	Config config.Config
	Path   string
	Raw    bool
	Stdout io.Writer
}

// Preview prints what the file at Path would look like after a run.
// Output is rendered with glamour on a terminal and written raw otherwise.
func Preview(opts PreviewOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stdout := orStdout(opts.Stdout)
	p := createProcessor(cfg, nil, true, docpost.Hooks{})

	out, _, err := p.Preview(opts.Path)
	if err != nil {
		return err
	}

	if opts.Raw || !isTerminal(stdout) {
		_, err := stdout.Write(out)
		return err
	}

	render, err := tui.NewRenderer()
	if err != nil {
		return err
	}
	rendered, err := render(string(out))
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	_, err = io.WriteString(stdout, rendered)
	return err
}
