package temperature

// C returns v degrees Celsius.
func C(v float64) Quantity[Celsius] { return New[Celsius](v) }

// F returns v degrees Fahrenheit.
func F(v float64) Quantity[Fahrenheit] { return New[Fahrenheit](v) }

// K returns v kelvins.
func K(v float64) Quantity[Kelvin] { return New[Kelvin](v) }
