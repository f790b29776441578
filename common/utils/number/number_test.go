package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.InDelta(t, 5, Clamp(10, 0, 5), 1e-9)
	assert.InDelta(t, 0, Clamp(-10, 0, 5), 1e-9)
	assert.InDelta(t, 3, Clamp(3, 0, 5), 1e-9)
}

func TestMinAbs(t *testing.T) {
	assert.InDelta(t, 5, MinAbs(10, 5), 1e-9)
	assert.InDelta(t, -5, MinAbs(-10, 5), 1e-9)
	assert.InDelta(t, 3, MinAbs(3, 5), 1e-9)
	assert.InDelta(t, -3, MinAbs(-3, 5), 1e-9)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(1e-12))
	assert.False(t, IsZero(0.1))
}
