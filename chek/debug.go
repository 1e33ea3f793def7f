package chek

import (
	"cmp"

	"github.com/LerianStudio/lib-chek/chek/almost"
)

// The Debug* constructs mirror their always-on counterparts but take their
// operands as functions. When DebugAssertions is false the body is dead code
// and the operand functions are never called, so their side effects do not
// happen. When it is true each operand function is called exactly once.

// DebugEqual is Equal for debug builds (-tags debug); otherwise it does nothing.
//
//	chek.DebugEqual(func() int { return cache.Len() }, func() int { return len(keys) })
func DebugEqual[T comparable](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkEqual(constructDebugEqual, left(), right(), msgAndArgs)
}

// DebugEq is an alias of DebugEqual.
func DebugEq[T comparable](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkEqual(constructDebugEq, left(), right(), msgAndArgs)
}

// DebugNotEqual is NotEqual for debug builds; otherwise it does nothing.
func DebugNotEqual[T comparable](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkNotEqual(constructDebugNotEqual, left(), right(), msgAndArgs)
}

// DebugNe is an alias of DebugNotEqual.
func DebugNe[T comparable](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkNotEqual(constructDebugNe, left(), right(), msgAndArgs)
}

// DebugLess is Less for debug builds; otherwise it does nothing.
func DebugLess[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugLess, left(), right(), msgAndArgs)
}

// DebugLt is an alias of DebugLess.
func DebugLt[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugLt, left(), right(), msgAndArgs)
}

// DebugLessOrEqual is LessOrEqual for debug builds; otherwise it does nothing.
func DebugLessOrEqual[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugLessEq, left(), right(), msgAndArgs)
}

// DebugLe is an alias of DebugLessOrEqual.
func DebugLe[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugLe, left(), right(), msgAndArgs)
}

// DebugGreater is Greater for debug builds; otherwise it does nothing.
func DebugGreater[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugGreater, left(), right(), msgAndArgs)
}

// DebugGt is an alias of DebugGreater.
func DebugGt[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugGt, left(), right(), msgAndArgs)
}

// DebugGreaterOrEqual is GreaterOrEqual for debug builds; otherwise it does nothing.
func DebugGreaterOrEqual[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugGreaterEq, left(), right(), msgAndArgs)
}

// DebugGe is an alias of DebugGreaterOrEqual.
func DebugGe[T cmp.Ordered](left, right func() T, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkOrdered(constructDebugGe, left(), right(), msgAndArgs)
}

// DebugAlmostEqual is AlmostEqual for debug builds; otherwise it does nothing.
func DebugAlmostEqual[F almost.Float](left, right func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostEqual(constructDebugAlmostEqual, left(), right(), msgAndArgs)
}

// DebugNotAlmostEqual is NotAlmostEqual for debug builds; otherwise it does nothing.
func DebugNotAlmostEqual[F almost.Float](left, right func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostEqual(constructDebugNotAlmostEqual, left(), right(), msgAndArgs)
}

// DebugAlmostZero is AlmostZero for debug builds; otherwise it does nothing.
func DebugAlmostZero[F almost.Float](value func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostZero(constructDebugAlmostZero, value(), msgAndArgs)
}

// DebugAlmostZeroWithTolerance is AlmostZeroWithTolerance for debug builds; otherwise it does nothing.
func DebugAlmostZeroWithTolerance[F almost.Float](value, tolerance func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostZeroWithin(constructDebugAlmostZeroTol, value(), tolerance(), msgAndArgs)
}

// DebugNotAlmostZero is NotAlmostZero for debug builds; otherwise it does nothing.
func DebugNotAlmostZero[F almost.Float](value func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostZero(constructDebugNotAlmostZero, value(), msgAndArgs)
}

// DebugNotAlmostZeroWith is NotAlmostZeroWith for debug builds; otherwise it does nothing.
func DebugNotAlmostZeroWith[F almost.Float](value, tolerance func() F, msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	checkAlmostZeroWithin(constructDebugNotAlmostZeroWith, value(), tolerance(), msgAndArgs)
}
