// Package markdown holds the line-level rewrites applied to generated
// Markdown files: dropping leading lines and demoting headings.
//
// The functions work on raw bytes and never parse Markdown. A heading is any
// line that begins with one or more '#' followed by a space, so fenced code
// blocks are rewritten like any other text.
package markdown
