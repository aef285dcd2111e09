package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContext(t *testing.T) {
	tests := []struct {
		name                   string
		before, after, context int
		wantBefore, wantAfter  int
	}{
		{name: "nothing set", wantBefore: 0, wantAfter: 0},
		{name: "unified fills both sides", context: 2, wantBefore: 2, wantAfter: 2},
		{name: "explicit before wins", before: 1, context: 2, wantBefore: 1, wantAfter: 2},
		{name: "explicit after wins", after: 3, context: 2, wantBefore: 2, wantAfter: 3},
		{name: "explicit sides without unified", before: 1, after: 4, wantBefore: 1, wantAfter: 4},
		{name: "explicit values may be smaller than unified", before: 1, after: 1, context: 5, wantBefore: 1, wantAfter: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := ResolveContext(tt.before, tt.after, tt.context)
			assert.Equal(t, tt.wantBefore, before)
			assert.Equal(t, tt.wantAfter, after)
		})
	}
}

func TestResolve(t *testing.T) {
	opts := Defaults()
	opts.Context = 2
	opts.BeforeContext = 1
	opts.LineNumber = true

	cfg, err := opts.Resolve()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Before)
	assert.Equal(t, 2, cfg.After)
	assert.True(t, cfg.LineNumber)
	assert.Equal(t, -1, cfg.MaxCount)
	assert.True(t, cfg.Unlimited())
	assert.Equal(t, "--", cfg.GroupSeparator)
}

func TestResolveIgnoreCaseOverride(t *testing.T) {
	opts := Defaults()
	opts.IgnoreCase = true

	cfg, err := opts.Resolve()
	require.NoError(t, err)
	assert.True(t, cfg.IgnoreCase)

	opts.NoIgnoreCase = true
	cfg, err = opts.Resolve()
	require.NoError(t, err)
	assert.False(t, cfg.IgnoreCase, "--no-ignore-case must force case sensitivity")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{name: "negative before", modify: func(o *Options) { o.BeforeContext = -1 }},
		{name: "negative after", modify: func(o *Options) { o.AfterContext = -1 }},
		{name: "negative context", modify: func(o *Options) { o.Context = -2 }},
		{name: "zero jobs", modify: func(o *Options) { o.Jobs = 0 }},
		{name: "negative timeout", modify: func(o *Options) { o.MatchTimeout = -time.Second }},
		{name: "unknown color", modify: func(o *Options) { o.Color = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			tt.modify(&opts)

			_, err := opts.Resolve()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	assert.NoError(t, Defaults().Validate())
}

func TestSeparatorEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  RunConfig
		want bool
	}{
		{name: "no context", cfg: RunConfig{}, want: false},
		{name: "no context, separator not suppressed", cfg: RunConfig{GroupSeparator: "--"}, want: false},
		{name: "before context", cfg: RunConfig{Before: 1}, want: true},
		{name: "after context", cfg: RunConfig{After: 1}, want: true},
		{name: "suppressed", cfg: RunConfig{Before: 1, After: 1, NoGroupSeparator: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.SeparatorEnabled())
		})
	}
}
