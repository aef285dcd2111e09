package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable, e.g.
// CTXGREP_GROUP_SEPARATOR.
const EnvPrefix = "CTXGREP"

// FromEnv reads the CTXGREP_* environment layer. Unset variables stay nil.
func FromEnv() (Layer, error) {
	var l Layer
	if err := envconfig.Process(EnvPrefix, &l); err != nil {
		return Layer{}, fmt.Errorf("reading environment: %w", err)
	}
	return l, nil
}
