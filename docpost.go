package docpost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/docpost/internal/markdown"
)

const (
	// DefaultRoot is the documentation directory processed when none is given.
	DefaultRoot = "docs"
	// DefaultTrimLines is how many leading lines are dropped from each file.
	DefaultTrimLines = 2
	// DefaultHeadingDir names the directory whose files get their headings demoted.
	DefaultHeadingDir = "classes"
)

var (
	// DefaultRemoveDirs are removed recursively from the root before the walk.
	DefaultRemoveDirs = []string{"modules"}
	// DefaultRemoveFiles are removed from the root before the walk.
	DefaultRemoveFiles = []string{"README.md"}
)

// ErrNotMarkdown is returned by Preview for files without the ".md" suffix.
var ErrNotMarkdown = errors.New("not a markdown file")

// Hooks are optional callbacks fired while a run progresses.
type Hooks struct {
	// OnRemove fires after a cleanup target was removed (or would be, in dry-run).
	OnRemove func(path string)
	// OnFile fires after a Markdown file was rewritten (or would be, in dry-run).
	OnFile func(FileResult)
}

// Processor applies the post-processing steps to a documentation tree.
type Processor struct {
	logger      *slog.Logger
	dryRun      bool
	trimLines   int
	headingDir  string
	removeDirs  []string
	removeFiles []string
	hooks       Hooks
}

// Option defines a functional option for configuring the Processor.
type Option func(*Processor)

// WithLogger sets the logger used for per-step debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDryRun makes Run report what it would do without changing the tree.
func WithDryRun(dryRun bool) Option {
	return func(p *Processor) {
		p.dryRun = dryRun
	}
}

// WithTrimLines sets how many leading lines are dropped from each file.
func WithTrimLines(n int) Option {
	return func(p *Processor) {
		if n >= 0 {
			p.trimLines = n
		}
	}
}

// WithHeadingDir sets the directory name that triggers heading demotion.
// An empty name disables demotion.
func WithHeadingDir(name string) Option {
	return func(p *Processor) {
		p.headingDir = name
	}
}

// WithRemoveDirs replaces the directories removed from the root.
func WithRemoveDirs(names ...string) Option {
	return func(p *Processor) {
		p.removeDirs = append([]string(nil), names...)
	}
}

// WithRemoveFiles replaces the files removed from the root.
func WithRemoveFiles(names ...string) Option {
	return func(p *Processor) {
		p.removeFiles = append([]string(nil), names...)
	}
}

// WithHooks registers progress callbacks.
func WithHooks(hooks Hooks) Option {
	return func(p *Processor) {
		p.hooks = hooks
	}
}

// New creates a Processor with the default steps.
func New(opts ...Option) *Processor {
	p := &Processor{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		trimLines:   DefaultTrimLines,
		headingDir:  DefaultHeadingDir,
		removeDirs:  append([]string(nil), DefaultRemoveDirs...),
		removeFiles: append([]string(nil), DefaultRemoveFiles...),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run cleans root and rewrites every Markdown file below it.
// A root that does not exist, or is not a directory, yields an empty Report.
// On error the returned Report describes the work done before the failure.
func (p *Processor) Run(ctx context.Context, root string) (*Report, error) {
	start := time.Now()
	report := &Report{Root: root, DryRun: p.dryRun}
	defer func() {
		report.Duration = time.Since(start)
	}()

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("Root not found, nothing to do", "root", root)
			return report, nil
		}
		return report, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		p.logger.Debug("Root is not a directory, nothing to do", "root", root)
		return report, nil
	}

	skip, err := p.removeUseless(root, report)
	if err != nil {
		return report, err
	}

	if err := p.walk(ctx, root, skip, report); err != nil {
		return report, err
	}

	p.logger.Debug("Run finished", "root", root, "files", len(report.Files), "removed", len(report.Removed))
	return report, nil
}

// Preview returns what the file at path would contain after processing,
// without writing it.
func (p *Processor) Preview(path string) ([]byte, FileResult, error) {
	if !markdown.IsMarkdown(filepath.Base(path)) {
		return nil, FileResult{}, fmt.Errorf("failed to preview %s: %w", path, ErrNotMarkdown)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, res := p.transform(path, content)
	return out, res, nil
}

// transform trims content and, for files with a heading directory anywhere
// in path, demotes its headings. Demotion only sees the trimmed content.
func (p *Processor) transform(path string, content []byte) ([]byte, FileResult) {
	res := FileResult{Path: path}

	before := markdown.CountLines(content)
	out := markdown.TrimLines(content, p.trimLines)
	res.LinesTrimmed = before - markdown.CountLines(out)

	if markdown.UnderDir(path, p.headingDir) {
		res.HeadingPass = true
		out, res.HeadingsDemoted = markdown.DemoteHeadings(out)
	}

	return out, res
}
