package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a configuration layer. Unknown keys are rejected.
func ParseYAML(data []byte) (Layer, error) {
	var l Layer
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Layer{}, nil
		}
		return Layer{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return l, nil
}

// LoadFile reads a YAML configuration layer from path.
func LoadFile(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, fmt.Errorf("reading config file: %w", err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return Layer{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
