package docpost

import "time"

// FileResult describes what happened to one Markdown file.
type FileResult struct {
	Path            string
	LinesTrimmed    int
	HeadingPass     bool
	HeadingsDemoted int
}

// Report summarizes a run.
type Report struct {
	Root     string
	DryRun   bool
	Removed  []string
	Files    []FileResult
	Duration time.Duration
}

// HeadingFiles counts the files that went through the heading pass.
func (r *Report) HeadingFiles() int {
	n := 0
	for _, f := range r.Files {
		if f.HeadingPass {
			n++
		}
	}
	return n
}

// HeadingsDemoted counts heading lines rewritten across all files.
func (r *Report) HeadingsDemoted() int {
	n := 0
	for _, f := range r.Files {
		n += f.HeadingsDemoted
	}
	return n
}
