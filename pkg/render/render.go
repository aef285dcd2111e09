// Package render formats match groups as output text.
package render

import (
	"strconv"
	"strings"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/praetorian-inc/ctxgrep/pkg/types"
)

// Line renders one line, prefixed with "{n}:" when lineNumbers is set.
// Anchor and context lines look the same.
func Line(line types.Line, lineNumbers bool) string {
	if !lineNumbers {
		return line.Content
	}
	return strconv.Itoa(line.Number()) + ":" + line.Content
}

// Block renders the lines of g joined by '\n'.
func Block(text types.Text, g types.MatchGroup, lineNumbers bool) string {
	var b strings.Builder
	for i := g.Start; i <= g.End; i++ {
		if i > g.Start {
			b.WriteByte('\n')
		}
		b.WriteString(Line(text.Lines[i], lineNumbers))
	}
	return b.String()
}

// Blocks renders every group of text in order.
func Blocks(text types.Text, groups []types.MatchGroup, lineNumbers bool) []string {
	blocks := make([]string, len(groups))
	for i, g := range groups {
		blocks[i] = Block(text, g, lineNumbers)
	}
	return blocks
}

// Assemble interleaves the group separator between consecutive blocks when
// cfg enables it. The decision is positional: it does not look at whether
// the groups are adjacent in the source text.
func Assemble(blocks []string, cfg config.RunConfig) []string {
	if len(blocks) == 0 {
		return nil
	}
	if !cfg.SeparatorEnabled() {
		return blocks
	}

	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, cfg.GroupSeparator)
		}
		out = append(out, b)
	}
	return out
}

// Text renders and assembles the output entries for one input.
func Text(text types.Text, groups []types.MatchGroup, cfg config.RunConfig) []string {
	return Assemble(Blocks(text, groups, cfg.LineNumber), cfg)
}
