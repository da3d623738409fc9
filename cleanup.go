package docpost

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// removeUseless deletes the configured directories and files directly under
// root. Missing targets are skipped. It returns the set of removed paths so
// that a dry-run walk can pretend they are gone.
func (p *Processor) removeUseless(root string, report *Report) (map[string]struct{}, error) {
	skip := make(map[string]struct{})

	for _, name := range p.removeDirs {
		path := filepath.Join(root, name)
		info, err := os.Lstat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			p.logger.Debug("Removal target is not a directory, keeping it", "path", path)
			continue
		}
		if !p.dryRun {
			if err := os.RemoveAll(path); err != nil {
				return nil, fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
		p.removed(path, report)
		skip[path] = struct{}{}
	}

	for _, name := range p.removeFiles {
		path := filepath.Join(root, name)
		info, err := os.Lstat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("failed to remove %s: is a directory", path)
		}
		if !p.dryRun {
			if err := os.Remove(path); err != nil {
				return nil, fmt.Errorf("failed to remove %s: %w", path, err)
			}
		}
		p.removed(path, report)
		skip[path] = struct{}{}
	}

	return skip, nil
}

func (p *Processor) removed(path string, report *Report) {
	p.logger.Debug("Removed", "path", path, "dry_run", p.dryRun)
	report.Removed = append(report.Removed, path)
	if p.hooks.OnRemove != nil {
		p.hooks.OnRemove(path)
	}
}
