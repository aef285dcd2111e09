package types

import "strings"

// Line is a single line of a Text. Index is 0-based.
type Line struct {
	Index   int
	Content string
}

// Number returns the 1-based line number used for display.
func (l Line) Number() int {
	return l.Index + 1
}

// SplitLines splits content on '\n' exactly like strings.Split.
// A trailing newline yields a final empty line, and "\r" is kept as part of
// the line content.
func SplitLines(content string) []Line {
	fields := strings.Split(content, "\n")
	lines := make([]Line, len(fields))
	for i, f := range fields {
		lines[i] = Line{Index: i, Content: f}
	}
	return lines
}
