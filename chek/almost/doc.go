// Package almost provides the tolerance predicates behind the approximate
// assertions (AlmostEqual, AlmostZero and their negations).
//
// The comparison algorithm is pluggable through Provider; the default,
// Relative, is built on gonum's floats/scalar helpers and uses the square root
// of the operand type's machine epsilon as its default tolerance.
//
//	almost.Equal(4.0, 4.000000001)        // true
//	almost.Zero(1e-10)                    // true
//	almost.ZeroWithin(0.005, 0.01)        // true
//	almost.Equal(float32(4), 4.000001)    // true, 32-bit tolerance
package almost
