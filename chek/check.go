package chek

import (
	"cmp"
	"reflect"

	"github.com/LerianStudio/lib-chek/chek/almost"
	"github.com/LerianStudio/lib-chek/chek/report"
	"github.com/LerianStudio/lib-chek/chek/source"
)

// pkgPath qualifies entry names when locating the call site of a failure.
var pkgPath = reflect.TypeOf(construct{}).PkgPath()

func checkEqual[T comparable](c construct, left, right T, msgAndArgs []any) {
	if left != right {
		failCmp(c, left, right, msgAndArgs)
	}
}

func checkNotEqual[T comparable](c construct, left, right T, msgAndArgs []any) {
	if left == right {
		failCmp(c, left, right, msgAndArgs)
	}
}

// checkOrdered negates the relation instead of inverting the operator so that
// NaN operands fail every ordered construct.
func checkOrdered[T cmp.Ordered](c construct, left, right T, msgAndArgs []any) {
	var holds bool

	switch c.relation {
	case RelationLess:
		holds = left < right
	case RelationLessOrEqual:
		holds = left <= right
	case RelationGreater:
		holds = left > right
	case RelationGreaterOrEqual:
		holds = left >= right
	}

	if !holds {
		failCmp(c, left, right, msgAndArgs)
	}
}

func checkAlmostEqual[F almost.Float](c construct, left, right F, msgAndArgs []any) {
	if almost.Equal(left, right) == c.relation.Negated() {
		failCmp(c, left, right, msgAndArgs)
	}
}

func checkAlmostZero[F almost.Float](c construct, value F, msgAndArgs []any) {
	if almost.Zero(value) == c.relation.Negated() {
		failValue(c, value, msgAndArgs)
	}
}

// checkAlmostZeroWithin reports only the value; the tolerance is not part of
// the diagnostic.
func checkAlmostZeroWithin[F almost.Float](c construct, value, tolerance F, msgAndArgs []any) {
	if almost.ZeroWithin(value, tolerance) == c.relation.Negated() {
		failValue(c, value, msgAndArgs)
	}
}

func failCmp(c construct, left, right any, msgAndArgs []any) {
	exprs := source.Args(pkgPath, c.entry, c.relation.Arity())

	if msg, ok := report.FormatMessage(msgAndArgs...); ok {
		report.CmpMsg(c.name, left, right, exprs[0], exprs[1], msg)
	}

	report.Cmp(c.name, left, right, exprs[0], exprs[1])
}

func failValue(c construct, value any, msgAndArgs []any) {
	exprs := source.Args(pkgPath, c.entry, c.relation.Arity())

	if msg, ok := report.FormatMessage(msgAndArgs...); ok {
		report.ValueMsg(c.name, value, exprs[0], msg)
	}

	report.Value(c.name, value, exprs[0])
}
