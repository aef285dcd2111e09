// Package scanner turns a Text into its stream of match groups.
//
// Every matching line produces its own group. Windows that overlap or touch
// are never merged, so overlapping context is rendered once per anchor;
// context-grep tools that coalesce windows behave differently.
package scanner

import (
	"iter"
	"slices"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/praetorian-inc/ctxgrep/pkg/types"
)

// Tester decides whether a single line matches.
type Tester interface {
	Test(line string) bool
}

// Prefilterer is implemented by testers that can rule out whole content.
type Prefilterer interface {
	MayMatch(content string) bool
}

// Groups lazily yields the match groups of text in line order.
// Once cfg.MaxCount groups have been yielded (MaxCount >= 0), no further
// line is tested.
func Groups(text types.Text, t Tester, cfg config.RunConfig) iter.Seq[types.MatchGroup] {
	return func(yield func(types.MatchGroup) bool) {
		emitted := 0
		last := text.LastIndex()
		for _, line := range text.Lines {
			if !cfg.Unlimited() && emitted >= cfg.MaxCount {
				return
			}
			if !t.Test(line.Content) {
				continue
			}
			emitted++
			if !yield(types.NewMatchGroup(line.Index, cfg.Before, cfg.After, last)) {
				return
			}
		}
	}
}

// Scan collects the GroupStream of text.
func Scan(text types.Text, t Tester, cfg config.RunConfig) []types.MatchGroup {
	return slices.Collect(Groups(text, t, cfg))
}

// ScanContent splits content and scans it. Content that the tester's
// prefilter rules out is not split at all.
func ScanContent(source, content string, t Tester, cfg config.RunConfig) (types.Text, []types.MatchGroup) {
	if pf, ok := t.(Prefilterer); ok && !pf.MayMatch(content) {
		return types.Text{Source: source}, nil
	}
	if cfg.MaxCount == 0 {
		return types.Text{Source: source}, nil
	}
	text := types.NewText(source, content)
	return text, Scan(text, t, cfg)
}
