package almost

import (
	"math"
	"reflect"
	"sync"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float is the set of operand types accepted by the approximate predicates.
type Float interface {
	~float32 | ~float64
}

// Default tolerances: the square root of the machine epsilon of each width.
var (
	Tolerance32 = math.Sqrt(float64(math.Nextafter32(1, 2) - 1))
	Tolerance64 = math.Sqrt(math.Nextafter(1, 2) - 1)
)

// Provider supplies the tolerance comparisons used by the approximate
// assertions. Implementations must be safe for concurrent use.
type Provider interface {
	// EqualWithin reports whether a and b are equal within tolerance.
	EqualWithin(a, b, tolerance float64) bool
	// ZeroWithin reports whether v is zero within tolerance.
	ZeroWithin(v, tolerance float64) bool
}

// Relative is the default Provider.
//
// Equality is relative: |a-b| / max(|a|, |b|) <= tolerance, with differences
// below the smallest normal float64 scaled instead of divided. Zero is
// absolute: |v| <= tolerance. NaN is never equal to anything nor zero, and
// infinities are only equal to themselves.
type Relative struct{}

// EqualWithin implements Provider.
func (Relative) EqualWithin(a, b, tolerance float64) bool {
	return scalar.EqualWithinRel(a, b, tolerance)
}

// ZeroWithin implements Provider.
func (Relative) ZeroWithin(v, tolerance float64) bool {
	return scalar.EqualWithinAbs(v, 0, tolerance)
}

var (
	providerInstance Provider = Relative{}
	providerMu       sync.RWMutex
)

// SetProvider replaces the process-wide Provider. Passing nil restores
// Relative.
//
// This should be called once during startup, before assertions run.
func SetProvider(provider Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()

	if provider == nil {
		provider = Relative{}
	}

	providerInstance = provider
}

// GetProvider returns the configured Provider.
func GetProvider() Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()

	return providerInstance
}

// Tolerance returns the default tolerance for the width of F.
func Tolerance[F Float]() float64 {
	var zero F
	if reflect.TypeOf(zero).Bits() == 32 {
		return Tolerance32
	}

	return Tolerance64
}

// Equal reports whether a and b are approximately equal using the default
// tolerance of F.
func Equal[F Float](a, b F) bool {
	return GetProvider().EqualWithin(float64(a), float64(b), Tolerance[F]())
}

// Zero reports whether v is approximately zero using the default tolerance
// of F.
func Zero[F Float](v F) bool {
	return GetProvider().ZeroWithin(float64(v), Tolerance[F]())
}

// ZeroWithin reports whether v is zero within tolerance.
func ZeroWithin[F Float](v, tolerance F) bool {
	return GetProvider().ZeroWithin(float64(v), float64(tolerance))
}
