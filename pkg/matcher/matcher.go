// Package matcher compiles the search pattern and tests lines against it.
package matcher

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/ctxgrep/pkg/prefilter"
)

// ErrInvalidPattern is wrapped when a pattern fails to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Options configures pattern compilation.
type Options struct {
	IgnoreCase bool
	Timeout    time.Duration // per-line match timeout (0 = none)
	Logger     *slog.Logger  // receives match errors; nil uses slog.Default()
}

// Pattern is a compiled line matcher. It is safe for concurrent use.
type Pattern struct {
	source    string
	re        *regexp2.Regexp
	prefilter *prefilter.Prefilter
	logger    *slog.Logger
	failures  atomic.Int64
}

// Compile compiles pattern once for a whole run.
func Compile(pattern string, opts Options) (*Pattern, error) {
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}

	// Try RE2 mode first (safer, no backtracking)
	re, err := regexp2.Compile(pattern, flags|regexp2.RE2)
	if err != nil {
		// Fallback to Perl-compatible mode for constructs RE2 mode rejects
		re, err = regexp2.Compile(pattern, flags)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
		}
	}
	if opts.Timeout > 0 {
		re.MatchTimeout = opts.Timeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pattern{
		source: pattern,
		re:     re,
		logger: logger,
	}
	if lit, ok := literal(pattern, opts.IgnoreCase); ok {
		p.prefilter = prefilter.New(lit)
	}
	return p, nil
}

// Test reports whether line matches. A match error (e.g. a timeout) is
// logged and counted as no match.
func (p *Pattern) Test(line string) bool {
	ok, err := p.re.MatchString(line)
	if err != nil {
		p.failures.Add(1)
		p.logger.Warn("pattern match failed, treating as no match", "pattern", p.source, "error", err)
		return false
	}
	return ok
}

// MayMatch reports whether content can contain a matching line. It only
// returns false for literal patterns whose text is absent from content.
func (p *Pattern) MayMatch(content string) bool {
	return p.prefilter.Pass([]byte(content))
}

// Literal reports whether the pattern is a plain, case-sensitive literal
// eligible for prefiltering.
func (p *Pattern) Literal() bool {
	return p.prefilter != nil
}

// Failures returns the number of lines whose match attempt failed.
func (p *Pattern) Failures() int64 {
	return p.failures.Load()
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.source
}

// literal returns the pattern text when it contains no metacharacters.
// U+FFFD is excluded: regexp2 decodes invalid input bytes to it, while the
// prefilter compares raw bytes.
func literal(pattern string, ignoreCase bool) (string, bool) {
	if pattern == "" || ignoreCase {
		return "", false
	}
	if strings.ContainsRune(pattern, utf8.RuneError) {
		return "", false
	}
	if regexp2.Escape(pattern) != pattern {
		return "", false
	}
	return pattern, true
}
