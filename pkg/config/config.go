// Package config resolves the run configuration from defaults, an optional
// YAML file, CTXGREP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Default values.
const (
	DefaultGroupSeparator = "--"
	DefaultMaxCount       = -1
	DefaultJobs           = 1
	DefaultMatchTimeout   = 5 * time.Second
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultColor          = "auto"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Options holds the raw, unresolved settings of one invocation.
type Options struct {
	IgnoreCase       bool
	NoIgnoreCase     bool // forces IgnoreCase off
	LineNumber       bool
	MaxCount         int // negative = unlimited
	BeforeContext    int
	AfterContext     int
	Context          int // fills BeforeContext/AfterContext left at 0
	GroupSeparator   string
	NoGroupSeparator bool
	Jobs             int
	MatchTimeout     time.Duration
	LogLevel         string
	LogFormat        string
	Color            string
}

// Defaults returns Options populated with built-in defaults.
func Defaults() Options {
	return Options{
		MaxCount:       DefaultMaxCount,
		GroupSeparator: DefaultGroupSeparator,
		Jobs:           DefaultJobs,
		MatchTimeout:   DefaultMatchTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Color:          DefaultColor,
	}
}

// RunConfig is the resolved configuration used by the scanner and renderer.
// It is immutable once built.
type RunConfig struct {
	IgnoreCase       bool
	LineNumber       bool
	MaxCount         int
	Before           int
	After            int
	GroupSeparator   string
	NoGroupSeparator bool
}

// ResolveContext applies the context precedence rule: the unified value
// fills a side only when that side is 0.
func ResolveContext(before, after, context int) (int, int) {
	if before <= 0 {
		before = context
	}
	if after <= 0 {
		after = context
	}
	return before, after
}

// Validate checks option ranges.
func (o Options) Validate() error {
	switch {
	case o.BeforeContext < 0:
		return fmt.Errorf("%w: before-context must not be negative (got %d)", ErrInvalid, o.BeforeContext)
	case o.AfterContext < 0:
		return fmt.Errorf("%w: after-context must not be negative (got %d)", ErrInvalid, o.AfterContext)
	case o.Context < 0:
		return fmt.Errorf("%w: context must not be negative (got %d)", ErrInvalid, o.Context)
	case o.Jobs < 1:
		return fmt.Errorf("%w: jobs must be at least 1 (got %d)", ErrInvalid, o.Jobs)
	case o.MatchTimeout < 0:
		return fmt.Errorf("%w: match-timeout must not be negative (got %s)", ErrInvalid, o.MatchTimeout)
	}
	switch o.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: unknown color mode %q (want auto, always or never)", ErrInvalid, o.Color)
	}
	return nil
}

// Resolve validates o and returns the RunConfig it describes.
func (o Options) Resolve() (RunConfig, error) {
	if err := o.Validate(); err != nil {
		return RunConfig{}, err
	}

	before, after := ResolveContext(o.BeforeContext, o.AfterContext, o.Context)

	return RunConfig{
		IgnoreCase:       o.IgnoreCase && !o.NoIgnoreCase,
		LineNumber:       o.LineNumber,
		MaxCount:         o.MaxCount,
		Before:           before,
		After:            after,
		GroupSeparator:   o.GroupSeparator,
		NoGroupSeparator: o.NoGroupSeparator,
	}, nil
}

// SeparatorEnabled reports whether consecutive groups are separated.
// Separators are never emitted when both context sizes are 0.
func (c RunConfig) SeparatorEnabled() bool {
	return !c.NoGroupSeparator && (c.Before > 0 || c.After > 0)
}

// Unlimited reports whether every match produces a group.
func (c RunConfig) Unlimited() bool {
	return c.MaxCount < 0
}
