// Package temperature provides temperature quantities whose scale is part of
// their type. Quantities of different scales cannot be compared or combined;
// [Convert] is the only way to move a value from one scale to another.
package temperature

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is the runtime form of a temperature scale.
type Unit byte

const (
	UnitCelsius    Unit = 'C'
	UnitFahrenheit Unit = 'F'
	UnitKelvin     Unit = 'K'
)

// Units lists every supported unit.
var Units = []Unit{UnitCelsius, UnitFahrenheit, UnitKelvin}

var ErrUnknownUnit = errors.New("unknown temperature unit")

// Valid reports whether u is one of [Units].
func (u Unit) Valid() bool {
	switch u {
	case UnitCelsius, UnitFahrenheit, UnitKelvin:
		return true
	}
	return false
}

// String returns the single letter of the unit.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", byte(u))
	}
	return string(u)
}

// Symbol returns the unit symbol, i.e. "°C" or "K".
func (u Unit) Symbol() string {
	switch u {
	case UnitCelsius:
		return "°C"
	case UnitFahrenheit:
		return "°F"
	case UnitKelvin:
		return "K"
	}
	return u.String()
}

// Name returns the lowercase name of the unit.
func (u Unit) Name() string {
	switch u {
	case UnitCelsius:
		return "celsius"
	case UnitFahrenheit:
		return "fahrenheit"
	case UnitKelvin:
		return "kelvin"
	}
	return u.String()
}

// ParseUnit returns the unit named by s. Either the letter or the full
// name is accepted, ignoring case and a leading degree sign.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "°"))
	for _, u := range Units {
		if name == u.Name() || name == strings.ToLower(u.String()) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownUnit, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownUnit, u)
	}
	return []byte{byte(u)}, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseUnit].
func (u *Unit) UnmarshalText(data []byte) error {
	v, err := ParseUnit(string(data))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
