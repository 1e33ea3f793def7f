//go:build unit && !chek_inline_panics

package chek

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterKeepsOwnFrame(t *testing.T) {
	frame := reporterFrame(t, "/report.Cmp", func() { NotEqual(1, 1) })

	assert.NotNil(t, frame.Func)
}
