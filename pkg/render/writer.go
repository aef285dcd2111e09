package render

import (
	"bufio"
	"fmt"
	"io"
)

// Writer commits output entries to an append-only sink, one entry per
// write, each terminated by '\n'.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write commits entries in order and flushes.
func (w *Writer) Write(entries []string) error {
	for _, e := range entries {
		if _, err := w.w.WriteString(e); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
