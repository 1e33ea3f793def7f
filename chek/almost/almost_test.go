//go:build unit

package almost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type myFloat float64

func TestDefaultTolerances(t *testing.T) {
	assert.InDelta(t, 3.4526698e-4, Tolerance32, 1e-10)
	assert.InDelta(t, 1.4901161e-8, Tolerance64, 1e-15)

	assert.Equal(t, Tolerance32, Tolerance[float32]())
	assert.Equal(t, Tolerance64, Tolerance[float64]())
	assert.Equal(t, Tolerance64, Tolerance[myFloat]())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1.0, 1.0))
	assert.True(t, Equal(1e6, 1e6+1e-3))
	assert.False(t, Equal(1.0, 1.0001))
	assert.True(t, Equal(float32(1.0), float32(1.0001)))
	assert.False(t, Equal(float32(1.0), float32(1.01)))
	assert.True(t, Equal(myFloat(2), myFloat(2)))

	assert.False(t, Equal(math.NaN(), math.NaN()))
	assert.True(t, Equal(math.Inf(1), math.Inf(1)))
	assert.False(t, Equal(math.Inf(1), math.Inf(-1)))
	assert.False(t, Equal(math.Inf(1), math.MaxFloat64))
}

func TestZero(t *testing.T) {
	assert.True(t, Zero(0.0))
	assert.True(t, Zero(1e-10))
	assert.True(t, Zero(-1e-10))
	assert.False(t, Zero(1e-7))
	assert.True(t, Zero(float32(1e-5)))
	assert.False(t, Zero(float32(1e-3)))
	assert.False(t, Zero(math.NaN()))
	assert.False(t, Zero(math.Inf(-1)))
}

func TestZeroWithin(t *testing.T) {
	assert.True(t, ZeroWithin(0.05, 0.1))
	assert.True(t, ZeroWithin(-0.1, 0.1))
	assert.False(t, ZeroWithin(0.5, 0.1))
	assert.False(t, ZeroWithin(math.NaN(), math.Inf(1)))
}

type fixedProvider struct{ equal, zero bool }

func (p fixedProvider) EqualWithin(_, _, _ float64) bool { return p.equal }

func (p fixedProvider) ZeroWithin(_, _ float64) bool { return p.zero }

func TestSetProvider(t *testing.T) {
	t.Cleanup(func() { SetProvider(nil) })

	SetProvider(fixedProvider{equal: false, zero: true})
	assert.False(t, Equal(1.0, 1.0))
	assert.True(t, Zero(100.0))

	SetProvider(nil)
	assert.IsType(t, Relative{}, GetProvider())
	assert.True(t, Equal(1.0, 1.0))
}
