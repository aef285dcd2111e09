// Package grep runs a search over a list of input sources.
//
// Inputs are committed strictly in the order given. With Jobs > 1 reading,
// scanning and rendering run concurrently, but output is still written one
// input at a time, so the result is identical to a sequential run.
package grep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/praetorian-inc/ctxgrep/pkg/matcher"
	"github.com/praetorian-inc/ctxgrep/pkg/render"
	"github.com/praetorian-inc/ctxgrep/pkg/scanner"
	"github.com/praetorian-inc/ctxgrep/pkg/source"
	"golang.org/x/sync/errgroup"
)

// NoticeFunc reports an input that contributed nothing because it could
// not be read.
type NoticeFunc func(source string, err error)

// Config configures a Runner.
type Config struct {
	Pattern      string
	Run          config.RunConfig
	Jobs         int           // <= 1 means sequential
	MatchTimeout time.Duration // per-line regex timeout
	Reader       source.Reader // nil means source.FileReader{}
	Out          io.Writer     // nil means os.Stdout
	Notice       NoticeFunc    // nil writes plain notices to os.Stderr
	Logger       *slog.Logger  // nil means slog.Default()
}

// Summary counts what a run did.
type Summary struct {
	Sources int // inputs processed
	Missing int // inputs reported as not found or too large
	Groups  int // match groups written
}

// Runner executes one configured search. The pattern is compiled once in
// NewRunner and reused for every input.
type Runner struct {
	pattern *matcher.Pattern
	cfg     config.RunConfig
	jobs    int
	reader  source.Reader
	out     *render.Writer
	notice  NoticeFunc
	logger  *slog.Logger
}

// NewRunner compiles the pattern. A pattern that does not compile is a
// fatal configuration error and no input is read.
func NewRunner(cfg Config) (*Runner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p, err := matcher.Compile(cfg.Pattern, matcher.Options{
		IgnoreCase: cfg.Run.IgnoreCase,
		Timeout:    cfg.MatchTimeout,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling pattern: %w", err)
	}

	r := &Runner{
		pattern: p,
		cfg:     cfg.Run,
		jobs:    max(cfg.Jobs, 1),
		reader:  cfg.Reader,
		notice:  cfg.Notice,
		logger:  logger,
	}
	if r.reader == nil {
		r.reader = source.FileReader{}
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	r.out = render.NewWriter(out)
	if r.notice == nil {
		r.notice = WriterNotice(os.Stderr)
	}

	logger.Debug("pattern compiled", "pattern", p.String(), "literal", p.Literal(), "ignore_case", cfg.Run.IgnoreCase)
	return r, nil
}

// result is the computed, not yet committed, output of one input.
type result struct {
	source  string
	entries []string
	groups  int
	err     error
}

// Run processes sources in order. Unreadable inputs are reported through
// the notice function and skipped; only cancellation and output errors
// abort the run.
func (r *Runner) Run(ctx context.Context, sources []string) (Summary, error) {
	if r.jobs <= 1 || len(sources) <= 1 {
		return r.runSequential(ctx, sources)
	}
	return r.runParallel(ctx, sources)
}

func (r *Runner) runSequential(ctx context.Context, sources []string) (Summary, error) {
	var sum Summary
	for _, src := range sources {
		if err := r.commit(&sum, r.process(ctx, src)); err != nil {
			return sum, err
		}
	}
	r.logSummary(sum)
	return sum, nil
}

func (r *Runner) runParallel(ctx context.Context, sources []string) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)

	results := make([]result, len(sources))
	done := make([]chan struct{}, len(sources))
	for i := range done {
		done[i] = make(chan struct{})
	}

	// Every job closes its done channel, so draining them on return waits
	// for all workers.
	defer func() {
		cancel()
		for _, d := range done {
			<-d
		}
	}()

	// Jobs never fail the group: an error stays with its input and surfaces
	// when the commit loop reaches it, so earlier inputs still commit.
	var g errgroup.Group
	g.SetLimit(r.jobs)
	go func() {
		for i, src := range sources {
			g.Go(func() error {
				defer close(done[i])
				results[i] = r.process(ctx, src)
				return nil
			})
		}
	}()

	var sum Summary
	for i := range sources {
		<-done[i]
		if err := r.commit(&sum, results[i]); err != nil {
			return sum, err
		}
	}
	r.logSummary(sum)
	return sum, nil
}

// process reads, scans and renders one input.
func (r *Runner) process(ctx context.Context, src string) result {
	content, err := r.reader.Read(ctx, src)
	if err != nil {
		return result{source: src, err: err}
	}

	text, groups := scanner.ScanContent(src, content, r.pattern, r.cfg)
	return result{
		source:  src,
		entries: render.Text(text, groups, r.cfg),
		groups:  len(groups),
	}
}

// commit writes one computed result.
func (r *Runner) commit(sum *Summary, res result) error {
	sum.Sources++
	if res.err != nil {
		if !source.Recoverable(res.err) {
			return res.err
		}
		sum.Missing++
		r.notice(res.source, res.err)
		return nil
	}

	if err := r.out.Write(res.entries); err != nil {
		return err
	}
	sum.Groups += res.groups
	r.logger.Debug("input scanned", "source", res.source, "groups", res.groups)
	return nil
}

func (r *Runner) logSummary(sum Summary) {
	r.logger.Debug("run complete", "sources", sum.Sources, "missing", sum.Missing, "groups", sum.Groups)
	if n := r.pattern.Failures(); n > 0 {
		r.logger.Warn("some lines could not be matched", "lines", n)
	}
}

// NoticeText is the human-readable notice for an unreadable input.
func NoticeText(src string, err error) string {
	if errors.Is(err, source.ErrTooLarge) {
		return src + ": file too large"
	}
	return src + ": file not found"
}

// WriterNotice returns a NoticeFunc writing plain notices to w.
func WriterNotice(w io.Writer) NoticeFunc {
	return func(src string, err error) {
		fmt.Fprintln(w, NoticeText(src, err))
	}
}
