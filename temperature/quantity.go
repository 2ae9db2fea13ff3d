package temperature

import (
	"math"
	"strconv"
)

// Epsilon is the absolute difference below which two quantities of the same
// scale are equal.
const Epsilon = 0.001

// AreEqual reports whether a and b differ by less than [Epsilon].
func AreEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Quantity is an immutable temperature in the scale S.
//
// S is part of the layout, so a Quantity of one scale cannot be converted
// to another scale with a type conversion. Quantities are not comparable
// with ==; use [Quantity.Equal].
type Quantity[S Scale] struct {
	_      [0]S
	_      [0]func()
	amount float64
}

// New returns the quantity v in the scale S. Any value is accepted.
func New[S Scale](v float64) Quantity[S] {
	return Quantity[S]{amount: v}
}

// Float returns the raw value of q.
func (q Quantity[S]) Float() float64 { return q.amount }

// Unit returns the unit of the scale S.
func (q Quantity[S]) Unit() Unit { return UnitOf[S]() }

// String formats q with its unit symbol, i.e. "36.5°C".
func (q Quantity[S]) String() string {
	return strconv.FormatFloat(q.amount, 'f', -1, 64) + q.Unit().Symbol()
}

// Equal reports whether q and r differ by less than [Epsilon].
func (q Quantity[S]) Equal(r Quantity[S]) bool {
	return AreEqual(q.amount, r.amount)
}

// Less reports whether the raw value of q is less than that of r.
// Unlike [Quantity.Equal], ordering ignores [Epsilon].
func (q Quantity[S]) Less(r Quantity[S]) bool { return q.amount < r.amount }

// Greater reports whether the raw value of q is greater than that of r.
func (q Quantity[S]) Greater(r Quantity[S]) bool { return r.Less(q) }

// LessEqual reports whether q is not greater than r. It is true when
// either value is NaN.
func (q Quantity[S]) LessEqual(r Quantity[S]) bool { return !q.Greater(r) }

// GreaterEqual reports whether q is not less than r. It is true when
// either value is NaN.
func (q Quantity[S]) GreaterEqual(r Quantity[S]) bool { return !q.Less(r) }

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to,
// or greater than r, comparing raw values. It may be used with
// [slices.SortFunc].
func (q Quantity[S]) Compare(r Quantity[S]) int {
	switch {
	case q.amount < r.amount:
		return -1
	case q.amount > r.amount:
		return 1
	}
	return 0
}

// Add returns q + r.
func (q Quantity[S]) Add(r Quantity[S]) Quantity[S] {
	return Quantity[S]{amount: q.amount + r.amount}
}

// Sub returns q - r.
func (q Quantity[S]) Sub(r Quantity[S]) Quantity[S] {
	return Quantity[S]{amount: q.amount - r.amount}
}
