// Package thermo checks that temperature conversions survive a round trip.
//
// Each sample is converted to each of the other two scales and back, and the
// result must equal the original within [temperature.Epsilon]. A failing
// round trip is reported as a [*ToleranceError]; nothing aborts the process.
//
// The thermo command runs the check on 36.5°C, 79°F and 100K, or on the
// samples of a YAML config:
//
//	log:
//	  level: debug
//	samples:
//	  - 36.5C
//	  - value: 79
//	    scale: fahrenheit
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/thermo
package thermo
