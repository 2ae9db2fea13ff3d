package thermo

import (
	"errors"
	"fmt"

	"github.com/lone-faerie/thermo/temperature"
)

var (
	ErrTolerance = errors.New("outside tolerance")
	ErrNoSamples = errors.New("no samples to check")
)

// ToleranceError reports a round trip whose result differs from the
// original value by at least [temperature.Epsilon].
type ToleranceError struct {
	Scale temperature.Unit
	Via   temperature.Unit
	Want  float64
	Got   float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("%s -> %s -> %s is %v: wanted %v, got %v (epsilon %v)",
		e.Scale.Symbol(), e.Via.Symbol(), e.Scale.Symbol(), ErrTolerance,
		e.Want, e.Got, temperature.Epsilon)
}

func (e *ToleranceError) Unwrap() error {
	return ErrTolerance
}

func errUnknownScale(s Sample) error {
	return fmt.Errorf("sample %v: %w", s.Value, temperature.ErrUnknownUnit)
}
