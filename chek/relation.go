package chek

//go:generate stringer -type=Relation -linecomment

// Relation is the comparison a construct performs.
type Relation uint8

// Relations known to the library. The line comments are the names used in
// diagnostics.
const (
	RelationEqual                   Relation = iota // equal
	RelationNotEqual                                // not_equal
	RelationLess                                    // less
	RelationLessOrEqual                             // less_or_equal
	RelationGreater                                 // greater
	RelationGreaterOrEqual                          // greater_or_equal
	RelationAlmostEqual                             // almost_equal
	RelationNotAlmostEqual                          // not_almost_equal
	RelationAlmostZero                              // almost_zero
	RelationAlmostZeroWithTolerance                 // almost_zero_with_tolerance
	RelationNotAlmostZero                           // not_almost_zero
	RelationNotAlmostZeroWith                       // not_almost_zero_with
	RelationUnreachable                             // unreachable
)

// Arity returns the number of operands shown in a diagnostic for r.
func (r Relation) Arity() int {
	switch r {
	case RelationUnreachable:
		return 0
	case RelationAlmostZero, RelationAlmostZeroWithTolerance, RelationNotAlmostZero, RelationNotAlmostZeroWith:
		return 1
	default:
		return 2
	}
}

// Negated reports whether r fails when its underlying predicate holds.
func (r Relation) Negated() bool {
	switch r {
	case RelationNotEqual, RelationNotAlmostEqual, RelationNotAlmostZero, RelationNotAlmostZeroWith:
		return true
	default:
		return false
	}
}

// construct is one named entry point.
type construct struct {
	relation Relation
	// name is the diagnostic name, e.g. "debug_eq".
	name string
	// entry is the exported Go function, used to find the call site.
	entry string
}

var (
	constructEqual     = construct{RelationEqual, "equal", "Equal"}
	constructEq        = construct{RelationEqual, "eq", "Eq"}
	constructNotEqual  = construct{RelationNotEqual, "not_equal", "NotEqual"}
	constructNe        = construct{RelationNotEqual, "ne", "Ne"}
	constructLess      = construct{RelationLess, "less", "Less"}
	constructLt        = construct{RelationLess, "lt", "Lt"}
	constructLessEq    = construct{RelationLessOrEqual, "less_or_equal", "LessOrEqual"}
	constructLe        = construct{RelationLessOrEqual, "le", "Le"}
	constructGreater   = construct{RelationGreater, "greater", "Greater"}
	constructGt        = construct{RelationGreater, "gt", "Gt"}
	constructGreaterEq = construct{RelationGreaterOrEqual, "greater_or_equal", "GreaterOrEqual"}
	constructGe        = construct{RelationGreaterOrEqual, "ge", "Ge"}

	constructAlmostEqual       = construct{RelationAlmostEqual, "almost_equal", "AlmostEqual"}
	constructNotAlmostEqual    = construct{RelationNotAlmostEqual, "not_almost_equal", "NotAlmostEqual"}
	constructAlmostZero        = construct{RelationAlmostZero, "almost_zero", "AlmostZero"}
	constructAlmostZeroTol     = construct{RelationAlmostZeroWithTolerance, "almost_zero_with_tolerance", "AlmostZeroWithTolerance"}
	constructNotAlmostZero     = construct{RelationNotAlmostZero, "not_almost_zero", "NotAlmostZero"}
	constructNotAlmostZeroWith = construct{RelationNotAlmostZeroWith, "not_almost_zero_with", "NotAlmostZeroWith"}

	constructDebugEqual     = construct{RelationEqual, "debug_equal", "DebugEqual"}
	constructDebugEq        = construct{RelationEqual, "debug_eq", "DebugEq"}
	constructDebugNotEqual  = construct{RelationNotEqual, "debug_not_equal", "DebugNotEqual"}
	constructDebugNe        = construct{RelationNotEqual, "debug_ne", "DebugNe"}
	constructDebugLess      = construct{RelationLess, "debug_less", "DebugLess"}
	constructDebugLt        = construct{RelationLess, "debug_lt", "DebugLt"}
	constructDebugLessEq    = construct{RelationLessOrEqual, "debug_less_or_equal", "DebugLessOrEqual"}
	constructDebugLe        = construct{RelationLessOrEqual, "debug_le", "DebugLe"}
	constructDebugGreater   = construct{RelationGreater, "debug_greater", "DebugGreater"}
	constructDebugGt        = construct{RelationGreater, "debug_gt", "DebugGt"}
	constructDebugGreaterEq = construct{RelationGreaterOrEqual, "debug_greater_or_equal", "DebugGreaterOrEqual"}
	constructDebugGe        = construct{RelationGreaterOrEqual, "debug_ge", "DebugGe"}

	constructDebugAlmostEqual       = construct{RelationAlmostEqual, "debug_almost_equal", "DebugAlmostEqual"}
	constructDebugNotAlmostEqual    = construct{RelationNotAlmostEqual, "debug_not_almost_equal", "DebugNotAlmostEqual"}
	constructDebugAlmostZero        = construct{RelationAlmostZero, "debug_almost_zero", "DebugAlmostZero"}
	constructDebugAlmostZeroTol     = construct{RelationAlmostZeroWithTolerance, "debug_almost_zero_with_tolerance", "DebugAlmostZeroWithTolerance"}
	constructDebugNotAlmostZero     = construct{RelationNotAlmostZero, "debug_not_almost_zero", "DebugNotAlmostZero"}
	constructDebugNotAlmostZeroWith = construct{RelationNotAlmostZeroWith, "debug_not_almost_zero_with", "DebugNotAlmostZeroWith"}
)
