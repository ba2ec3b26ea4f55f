package numeric

import "math"

// Unit is the number of grid subdivisions per user unit. Every [Scalar] is an
// integer multiple of 1/Unit; display code divides by Unit to recover user
// coordinates.
const Unit = 1024

// Scalar is a coordinate or length stored as an integer on the grid
// described by [Unit]. Equality and ordering of Scalars are bit-exact; they
// are never compared with a tolerance, unlike the transient floats used to
// compute them.
type Scalar int64

// Round converts a floating-point user-unit-scaled value already multiplied
// by [Unit] into the nearest Scalar. Callers that have a value in user units
// (not grid units) should multiply by Unit first — see [FromUserUnits].
func Round(gridValue float64) Scalar {
	return Scalar(math.Round(gridValue))
}

// FromUserUnits converts a value expressed in user units (e.g. the "4" in
// rect(4, 4)) to a Scalar on the grid.
func FromUserUnits(userUnits float64) Scalar {
	return Round(userUnits * Unit)
}

// Float returns s as a float64 in grid units (not divided by Unit). This is
// the representation transform code operates on transiently before rounding
// back with [Round].
func (s Scalar) Float() float64 {
	return float64(s)
}

// UserUnits returns s converted back to user units by dividing by [Unit].
// This is what display and SVG-emission code uses.
func (s Scalar) UserUnits() float64 {
	return float64(s) / Unit
}

// Abs returns the absolute value of s.
func (s Scalar) Abs() Scalar {
	return Abs(s)
}
