package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/docpost/internal/config"
	"github.com/aretw0/docpost/internal/logging"
)

// createLogger configures the application logger.
// Debug wins over the configured level; with neither set logging is off.
func createLogger(w io.Writer, debug bool, cfg config.Config) (*slog.Logger, error) {
	if debug {
		return logging.NewWithFormat(w, slog.LevelDebug, cfg.LogFormat), nil
	}
	if cfg.LogLevel == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithFormat(w, level, cfg.LogFormat), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func orStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}
