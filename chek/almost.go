package chek

import "github.com/LerianStudio/lib-chek/chek/almost"

// AlmostEqual panics if left and right are not approximately equal.
//
// The comparison is delegated to the almost package, which uses a relative
// tolerance of √ε for the operand type by default.
//
//	chek.AlmostEqual(float32(4.0), 4.000001)
//	chek.AlmostEqual(mean, 0.5, "mean of %d samples", n)
func AlmostEqual[F almost.Float](left, right F, msgAndArgs ...any) {
	checkAlmostEqual(constructAlmostEqual, left, right, msgAndArgs)
}

// NotAlmostEqual panics if left and right are approximately equal.
func NotAlmostEqual[F almost.Float](left, right F, msgAndArgs ...any) {
	checkAlmostEqual(constructNotAlmostEqual, left, right, msgAndArgs)
}

// AlmostZero panics if value is not approximately zero.
//
//	chek.AlmostZero(residual)
func AlmostZero[F almost.Float](value F, msgAndArgs ...any) {
	checkAlmostZero(constructAlmostZero, value, msgAndArgs)
}

// AlmostZeroWithTolerance panics unless |value| <= tolerance.
//
// Only value appears in the diagnostic.
func AlmostZeroWithTolerance[F almost.Float](value, tolerance F, msgAndArgs ...any) {
	checkAlmostZeroWithin(constructAlmostZeroTol, value, tolerance, msgAndArgs)
}

// NotAlmostZero panics if value is approximately zero.
func NotAlmostZero[F almost.Float](value F, msgAndArgs ...any) {
	checkAlmostZero(constructNotAlmostZero, value, msgAndArgs)
}

// NotAlmostZeroWith panics if |value| <= tolerance.
func NotAlmostZeroWith[F almost.Float](value, tolerance F, msgAndArgs ...any) {
	checkAlmostZeroWithin(constructNotAlmostZeroWith, value, tolerance, msgAndArgs)
}
