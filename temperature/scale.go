package temperature

// Scale is the set of compile-time scale markers. The set is closed: a type
// outside this package cannot satisfy it.
type Scale interface {
	Celsius | Fahrenheit | Kelvin
	Unit() Unit
}

type (
	// Celsius marks a quantity in degrees Celsius.
	Celsius struct{}

	// Fahrenheit marks a quantity in degrees Fahrenheit.
	Fahrenheit struct{}

	// Kelvin marks a quantity in kelvins.
	Kelvin struct{}
)

func (Celsius) Unit() Unit    { return UnitCelsius }
func (Fahrenheit) Unit() Unit { return UnitFahrenheit }
func (Kelvin) Unit() Unit     { return UnitKelvin }

// UnitOf returns the runtime unit of the scale S.
func UnitOf[S Scale]() Unit {
	var s S
	return s.Unit()
}
