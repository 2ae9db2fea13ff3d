package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/thermo"
	"github.com/lone-faerie/thermo/temperature"
)

var ErrInvalidSample = errors.New("invalid sample")

// Sample is a temperature checked by the self-check. In yaml it is either
// a scalar such as "36.5C" or "79 fahrenheit", or a mapping with the keys
// value and scale.
type Sample struct {
	Value float64          `yaml:"value"`
	Scale temperature.Unit `yaml:"scale"`
}

// DefaultSamples returns 36.5°C, 79°F and 100K.
func DefaultSamples() []Sample {
	defaults := thermo.DefaultSamples()
	samples := make([]Sample, len(defaults))
	for i, s := range defaults {
		samples[i] = Sample(s)
	}
	return samples
}

// ParseSample parses the scalar form of a [Sample].
func ParseSample(s string) (Sample, error) {
	s = strings.TrimSpace(s)
	num := strings.TrimRightFunc(s, unicode.IsLetter)
	unit, err := temperature.ParseUnit(s[len(num):])
	if err != nil {
		return Sample{}, fmt.Errorf("%w %q: %w", ErrInvalidSample, s, err)
	}
	num = strings.TrimSuffix(strings.TrimSpace(num), "°")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Sample{}, fmt.Errorf("%w %q: %w", ErrInvalidSample, s, err)
	}
	return Sample{v, unit}, nil
}

func (s Sample) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + s.Scale.Symbol()
}

func (s *Sample) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind == yaml.ScalarNode {
		*s, err = ParseSample(node.Value)
		return
	}
	var raw struct {
		Value *float64 `yaml:"value"`
		Scale string   `yaml:"scale"`
	}
	if err = node.Decode(&raw); err != nil {
		return
	}
	if raw.Value == nil {
		return fmt.Errorf("%w at line %d: missing value", ErrInvalidSample, node.Line)
	}
	unit, err := temperature.ParseUnit(raw.Scale)
	if err != nil {
		return fmt.Errorf("%w at line %d: %w", ErrInvalidSample, node.Line, err)
	}
	*s = Sample{*raw.Value, unit}
	return nil
}
