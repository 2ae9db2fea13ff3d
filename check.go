package thermo

import (
	"errors"
	"strconv"

	"github.com/lone-faerie/thermo/log"
	"github.com/lone-faerie/thermo/temperature"
)

// Sample is a raw value and the scale it is expressed in.
type Sample struct {
	Value float64
	Scale temperature.Unit
}

// DefaultSamples returns 36.5°C, 79°F and 100K.
func DefaultSamples() []Sample {
	return []Sample{
		{36.5, temperature.UnitCelsius},
		{79.0, temperature.UnitFahrenheit},
		{100.0, temperature.UnitKelvin},
	}
}

// Result is the outcome of converting a sample to Via and back.
type Result struct {
	Scale temperature.Unit
	Via   temperature.Unit
	Want  float64
	Got   float64
}

// OK reports whether Got equals Want within [temperature.Epsilon].
func (r Result) OK() bool {
	return temperature.AreEqual(r.Want, r.Got)
}

// Err returns a [*ToleranceError] if r is not OK, otherwise nil.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ToleranceError{r.Scale, r.Via, r.Want, r.Got}
}

// String formats r as "36.5°C -> °F -> °C = 36.5 ok".
func (r Result) String() string {
	status := "ok"
	if !r.OK() {
		status = "FAIL"
	}
	return formatFloat(r.Want) + r.Scale.Symbol() +
		" -> " + r.Via.Symbol() +
		" -> " + r.Scale.Symbol() +
		" = " + formatFloat(r.Got) + " " + status
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundTrip[S, T temperature.Scale](q temperature.Quantity[S]) Result {
	back := temperature.Convert[S](temperature.Convert[T](q))
	return Result{
		Scale: q.Unit(),
		Via:   temperature.UnitOf[T](),
		Want:  q.Float(),
		Got:   back.Float(),
	}
}

// RoundTrips converts s to each of the other two scales and back.
func RoundTrips(s Sample) ([]Result, error) {
	type (
		C = temperature.Celsius
		F = temperature.Fahrenheit
		K = temperature.Kelvin
	)

	switch s.Scale {
	case temperature.UnitCelsius:
		q := temperature.C(s.Value)
		return []Result{roundTrip[C, F](q), roundTrip[C, K](q)}, nil
	case temperature.UnitFahrenheit:
		q := temperature.F(s.Value)
		return []Result{roundTrip[F, C](q), roundTrip[F, K](q)}, nil
	case temperature.UnitKelvin:
		q := temperature.K(s.Value)
		return []Result{roundTrip[K, C](q), roundTrip[K, F](q)}, nil
	}
	return nil, errUnknownScale(s)
}

// Check runs [RoundTrips] for every sample and returns all results. The
// error joins a [*ToleranceError] for every failed round trip and an error
// for every sample with an unknown scale. Checking no samples fails with
// [ErrNoSamples].
func Check(samples ...Sample) ([]Result, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	var (
		results []Result
		errs    []error
	)
	for _, s := range samples {
		rr, err := RoundTrips(s)
		if err != nil {
			log.Error("Skipping sample", err, "scale", s.Scale)
			errs = append(errs, err)
			continue
		}
		for _, r := range rr {
			if err := r.Err(); err != nil {
				log.Error("Round trip failed", err,
					"scale", r.Scale, "via", r.Via, "want", r.Want, "got", r.Got)
				errs = append(errs, err)
				continue
			}
			log.Debug("Round trip", "scale", r.Scale, "via", r.Via, "want", r.Want, "got", r.Got)
		}
		results = append(results, rr...)
	}
	log.Info("Check complete", "samples", len(samples), "round_trips", len(results), "failed", len(errs))
	return results, errors.Join(errs...)
}
