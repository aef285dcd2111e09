// Package ctxgrep provides line-oriented pattern search with context.
//
// A Searcher compiles its pattern once and can then be applied to any
// number of inputs. Every matching line yields its own group made of the
// line plus up to N lines before and after it; overlapping groups are not
// merged.
//
// # Basic Usage
//
//	s, err := ctxgrep.NewSearcher("ERROR", ctxgrep.WithContext(1, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, entry := range s.Grep(content) {
//	    fmt.Println(entry)
//	}
package ctxgrep

import (
	"context"
	"fmt"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/praetorian-inc/ctxgrep/pkg/logging"
	"github.com/praetorian-inc/ctxgrep/pkg/matcher"
	"github.com/praetorian-inc/ctxgrep/pkg/render"
	"github.com/praetorian-inc/ctxgrep/pkg/scanner"
	"github.com/praetorian-inc/ctxgrep/pkg/source"
	"github.com/praetorian-inc/ctxgrep/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// MatchGroup is the line range built around one matching line.
	MatchGroup = types.MatchGroup

	// Text is the line sequence of one input.
	Text = types.Text

	// RunConfig is the resolved search configuration.
	RunConfig = config.RunConfig
)

// ErrInvalidPattern is returned by NewSearcher for patterns that do not compile.
var ErrInvalidPattern = matcher.ErrInvalidPattern

// Searcher applies one compiled pattern to inputs. It is safe for
// concurrent use.
type Searcher struct {
	pattern *matcher.Pattern
	cfg     config.RunConfig
}

// Option configures a Searcher.
type Option func(*config.Options)

// WithIgnoreCase matches case-insensitively.
func WithIgnoreCase() Option {
	return func(o *config.Options) {
		o.IgnoreCase = true
	}
}

// WithLineNumbers prefixes every rendered line with its 1-based number.
func WithLineNumbers() Option {
	return func(o *config.Options) {
		o.LineNumber = true
	}
}

// WithMaxCount limits the number of groups per input (negative = unlimited).
func WithMaxCount(n int) Option {
	return func(o *config.Options) {
		o.MaxCount = n
	}
}

// WithContext sets the number of lines shown before and after each match.
func WithContext(before, after int) Option {
	return func(o *config.Options) {
		o.BeforeContext = before
		o.AfterContext = after
	}
}

// WithGroupSeparator sets the line printed between groups. Default is "--".
func WithGroupSeparator(sep string) Option {
	return func(o *config.Options) {
		o.GroupSeparator = sep
	}
}

// WithoutGroupSeparator suppresses the separator between groups.
func WithoutGroupSeparator() Option {
	return func(o *config.Options) {
		o.NoGroupSeparator = true
	}
}

// NewSearcher compiles pattern with the given options.
//
// By default matching is case-sensitive, there is no context, no line
// numbers and no group limit.
func NewSearcher(pattern string, opts ...Option) (*Searcher, error) {
	o := config.Defaults()
	for _, opt := range opts {
		opt(&o)
	}
	return NewSearcherWithOptions(pattern, o)
}

// NewSearcherWithOptions compiles pattern with fully specified raw options,
// e.g. as loaded by config.Load.
func NewSearcherWithOptions(pattern string, o config.Options) (*Searcher, error) {
	cfg, err := o.Resolve()
	if err != nil {
		return nil, err
	}

	p, err := matcher.Compile(pattern, matcher.Options{
		IgnoreCase: cfg.IgnoreCase,
		Timeout:    o.MatchTimeout,
		Logger:     logging.Discard(),
	})
	if err != nil {
		return nil, err
	}

	return &Searcher{pattern: p, cfg: cfg}, nil
}

// Config returns the resolved configuration.
func (s *Searcher) Config() RunConfig {
	return s.cfg
}

// Groups returns the match groups of content.
func (s *Searcher) Groups(content string) []MatchGroup {
	_, groups := scanner.ScanContent("", content, s.pattern, s.cfg)
	return groups
}

// Grep returns the output entries for content: one rendered block per
// group, with separator entries in between when enabled.
func (s *Searcher) Grep(content string) []string {
	entries, _ := s.Search(content)
	return entries
}

// Search scans content once and returns both the output entries and the
// groups they were rendered from.
func (s *Searcher) Search(content string) ([]string, []MatchGroup) {
	text, groups := scanner.ScanContent("", content, s.pattern, s.cfg)
	return render.Text(text, groups, s.cfg), groups
}

// GrepFile reads path and greps its content.
func (s *Searcher) GrepFile(path string) ([]string, error) {
	content, err := source.FileReader{}.Read(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return s.Grep(content), nil
}
