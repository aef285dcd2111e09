package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/ctxgrep/pkg/grep"
	"golang.org/x/term"
)

// colorEnabled resolves a --color mode for w. Only notices are colored;
// match output never is.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		// Check if the stream is a TTY and NO_COLOR is not set
		return term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// newNotice returns a notice function writing to w, in yellow when enabled.
func newNotice(w io.Writer, enabled bool) grep.NoticeFunc {
	style := color.New(color.FgYellow)
	if enabled {
		style.EnableColor()
	} else {
		style.DisableColor()
	}
	return func(src string, err error) {
		fmt.Fprintln(w, style.Sprint(grep.NoticeText(src, err)))
	}
}
