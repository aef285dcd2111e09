package config

import "time"

// Layer is a partial set of options. Nil fields leave the underlying value
// untouched, so a YAML file or the environment only overrides what it names.
type Layer struct {
	IgnoreCase       *bool          `yaml:"ignore_case" envconfig:"IGNORE_CASE"`
	NoIgnoreCase     *bool          `yaml:"no_ignore_case" envconfig:"NO_IGNORE_CASE"`
	LineNumber       *bool          `yaml:"line_number" envconfig:"LINE_NUMBER"`
	MaxCount         *int           `yaml:"max_count" envconfig:"MAX_COUNT"`
	BeforeContext    *int           `yaml:"before_context" envconfig:"BEFORE_CONTEXT"`
	AfterContext     *int           `yaml:"after_context" envconfig:"AFTER_CONTEXT"`
	Context          *int           `yaml:"context" envconfig:"CONTEXT"`
	GroupSeparator   *string        `yaml:"group_separator" envconfig:"GROUP_SEPARATOR"`
	NoGroupSeparator *bool          `yaml:"no_group_separator" envconfig:"NO_GROUP_SEPARATOR"`
	Jobs             *int           `yaml:"jobs" envconfig:"JOBS"`
	MatchTimeout     *time.Duration `yaml:"match_timeout" envconfig:"MATCH_TIMEOUT"`
	LogLevel         *string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat        *string        `yaml:"log_format" envconfig:"LOG_FORMAT"`
	Color            *string        `yaml:"color" envconfig:"COLOR"`
}

// Apply overlays the non-nil fields of l onto o.
func (l Layer) Apply(o *Options) {
	set(&o.IgnoreCase, l.IgnoreCase)
	set(&o.NoIgnoreCase, l.NoIgnoreCase)
	set(&o.LineNumber, l.LineNumber)
	set(&o.MaxCount, l.MaxCount)
	set(&o.BeforeContext, l.BeforeContext)
	set(&o.AfterContext, l.AfterContext)
	set(&o.Context, l.Context)
	set(&o.GroupSeparator, l.GroupSeparator)
	set(&o.NoGroupSeparator, l.NoGroupSeparator)
	set(&o.Jobs, l.Jobs)
	set(&o.MatchTimeout, l.MatchTimeout)
	set(&o.LogLevel, l.LogLevel)
	set(&o.LogFormat, l.LogFormat)
	set(&o.Color, l.Color)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
