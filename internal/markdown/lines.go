package markdown

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Ext is the suffix that identifies a Markdown file.
const Ext = ".md"

// IsMarkdown reports whether name ends in the Markdown suffix.
func IsMarkdown(name string) bool {
	return strings.HasSuffix(name, Ext)
}

// nextLine returns the length of the first line of b, terminator included.
// "\n", "\r\n" and a lone "\r" all end a line.
func nextLine(b []byte) int {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\n':
			return i + 1
		case '\r':
			if i+1 < len(b) && b[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		}
	}
	return len(b)
}

// TrimLines drops the first n lines of content. Remaining bytes are
// returned untouched. Content with fewer than n lines becomes empty.
func TrimLines(content []byte, n int) []byte {
	for i := 0; i < n && len(content) > 0; i++ {
		content = content[nextLine(content):]
	}
	return content
}

// CountLines returns how many lines content holds. A trailing line
// without a terminator still counts.
func CountLines(content []byte) int {
	count := 0
	for len(content) > 0 {
		content = content[nextLine(content):]
		count++
	}
	return count
}

// DemoteHeadings removes one leading '#' from every line that starts with
// one or more '#' followed by a space. It returns the rewritten content and
// the number of headings changed. A level-1 heading keeps its space and
// loses its marker.
func DemoteHeadings(content []byte) ([]byte, int) {
	out := make([]byte, 0, len(content))
	demoted := 0
	for len(content) > 0 {
		n := nextLine(content)
		line := content[:n]
		if isHeading(line) {
			line = line[1:]
			demoted++
		}
		out = append(out, line...)
		content = content[n:]
	}
	return out, demoted
}

func isHeading(line []byte) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == ' '
}

// UnderDir reports whether path has a directory segment exactly equal to
// dir. Glob metacharacters in dir match literally.
func UnderDir(path, dir string) bool {
	if dir == "" {
		return false
	}
	ok, err := doublestar.Match("**/"+escapeMeta(dir)+"/**", strings.TrimLeft(filepath.ToSlash(path), "/"))
	return err == nil && ok
}

func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
