package types

// Text is the line sequence of one input source.
type Text struct {
	Source string // displayable source identifier ("-" for stdin)
	Lines  []Line
}

// NewText splits content into a Text for source.
func NewText(source, content string) Text {
	return Text{Source: source, Lines: SplitLines(content)}
}

// LastIndex returns the 0-based index of the final line, or -1 for a Text
// without lines.
func (t Text) LastIndex() int {
	return len(t.Lines) - 1
}
