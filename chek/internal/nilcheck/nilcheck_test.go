//go:build unit

package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type reporter interface{ Report() }

type reporterImpl struct{}

func (*reporterImpl) Report() {}

func TestNil(t *testing.T) {
	t.Parallel()

	var typed *reporterImpl
	var iface reporter = typed

	assert.True(t, Nil(nil))
	assert.True(t, Nil(iface))
	assert.True(t, Nil([]int(nil)))
	assert.True(t, Nil(map[string]int(nil)))
	assert.True(t, Nil((func())(nil)))
	assert.True(t, Nil((chan int)(nil)))

	assert.False(t, Nil(&reporterImpl{}))
	assert.False(t, Nil(0))
	assert.False(t, Nil(""))
	assert.False(t, Nil(struct{}{}))
}
