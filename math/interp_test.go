package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterp(t *testing.T) {
	xp := []float32{0, 10, 25, 40}
	yp := []float32{1.6, 1.2, 0.8, 0.6}

	assert.Equal(t, float32(1.6), Interp(-5, xp, yp))
	assert.Equal(t, float32(1.6), Interp(0, xp, yp))
	assert.InDelta(t, 1.4, Interp(5, xp, yp), 1e-6)
	assert.InDelta(t, 0.8, Interp(25, xp, yp), 1e-6)
	assert.Equal(t, float32(0.6), Interp(100, xp, yp))
}

func TestInterpDegenerateTables(t *testing.T) {
	assert.Equal(t, float32(0), Interp(1, nil, nil))
	assert.Equal(t, float32(0), Interp(1, []float32{0, 1}, []float32{5}))
	assert.Equal(t, float32(7), Interp(1, []float32{3}, []float32{7}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(0.5, 1, 5))
	assert.Equal(t, float32(5), Clamp(9, 1, 5))
	assert.Equal(t, float32(3), Clamp(3, 1, 5))
}

func TestDistanceTo(t *testing.T) {
	a := NewPosition(52.52, 13.405)
	b := NewPosition(52.53, 13.405)

	// 0.01 degrees of latitude is roughly 1.1 km
	assert.InDelta(t, 1112, a.DistanceTo(b), 5)
	assert.InDelta(t, 1112, b.DistanceTo(a), 5)
	assert.Equal(t, float32(0), a.DistanceTo(a))
}
