package docpost

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/docpost/internal/markdown"
)

// walk rewrites every Markdown file under root, skipping paths in skip.
// A symlinked root is followed; symlinked directories below it are not.
func (p *Processor) walk(ctx context.Context, root string, skip map[string]struct{}, report *Report) error {
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// WalkDir does not descend into a symlinked root unless it ends in a separator.
		walkRoot = root + string(filepath.Separator)
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("failed to walk %s: %w", path, walkErr)
		}

		if _, ok := skip[path]; ok {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !markdown.IsMarkdown(d.Name()) {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := p.processFile(path)
		if err != nil {
			return err
		}

		report.Files = append(report.Files, res)
		if p.hooks.OnFile != nil {
			p.hooks.OnFile(res)
		}
		return nil
	})
}

// processFile reads path fully, transforms it in memory and writes it back
// in place. Existing permissions are kept.
func (p *Processor) processFile(path string) (FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, res := p.transform(path, content)

	if !p.dryRun {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	p.logger.Debug("Processed file",
		"path", path,
		"lines_trimmed", res.LinesTrimmed,
		"heading_pass", res.HeadingPass,
		"headings_demoted", res.HeadingsDemoted,
		"dry_run", p.dryRun,
	)
	return res, nil
}
