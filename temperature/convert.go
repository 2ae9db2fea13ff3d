package temperature

import "fmt"

type conversion struct {
	from, to Unit
}

// Each pair is converted directly. Going through an intermediate scale would
// round differently.
var conversions = map[conversion]func(float64) float64{
	{UnitCelsius, UnitKelvin}: func(v float64) float64 {
		return v + 273.15
	},
	{UnitKelvin, UnitCelsius}: func(v float64) float64 {
		return v - 273.15
	},
	{UnitCelsius, UnitFahrenheit}: func(v float64) float64 {
		return (v*9)/5 + 32
	},
	{UnitFahrenheit, UnitCelsius}: func(v float64) float64 {
		return (v - 32) * 5 / 9
	},
	{UnitFahrenheit, UnitKelvin}: func(v float64) float64 {
		return (v + 459.67) * 5 / 9
	},
	{UnitKelvin, UnitFahrenheit}: func(v float64) float64 {
		return (v*9)/5 - 459.67
	},
}

// ConvertValue converts the raw value v from one unit to another. Converting
// a unit to itself returns v unchanged.
func ConvertValue(v float64, from, to Unit) (float64, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("%w %v", ErrUnknownUnit, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w %v", ErrUnknownUnit, to)
	}
	if from == to {
		return v, nil
	}
	return conversions[conversion{from, to}](v), nil
}

// Convert returns q expressed in the scale R. The source is not modified.
//
//	k := temperature.Convert[temperature.Kelvin](temperature.C(36.5))
func Convert[R, S Scale](q Quantity[S]) Quantity[R] {
	from, to := UnitOf[S](), UnitOf[R]()
	if from == to {
		return Quantity[R]{amount: q.amount}
	}
	f, ok := conversions[conversion{from, to}]
	if !ok {
		// Unreachable while every pair of the closed Scale set is in the table.
		panic("temperature: no conversion from " + from.String() + " to " + to.String())
	}
	return Quantity[R]{amount: f(q.amount)}
}
