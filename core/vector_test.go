package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVector(t *testing.T) {
	v := NormalizeVector([]float32{3, 4})
	require.Len(t, v, 2)
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	var magnitude float64
	for _, val := range v {
		magnitude += float64(val) * float64(val)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
}

func TestNormalizeVectorZero(t *testing.T) {
	v := NormalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v, "zero vector stays zero")

	assert.Empty(t, NormalizeVector(nil))
}

func TestNormalizeVectorDoesNotMutate(t *testing.T) {
	original := []float32{1, 2, 2}
	NormalizeVector(original)
	assert.Equal(t, []float32{1, 2, 2}, original)
}

func TestIsZeroVector(t *testing.T) {
	assert.True(t, IsZeroVector(nil))
	assert.True(t, IsZeroVector([]float32{}))
	assert.True(t, IsZeroVector([]float32{0, 0}))
	assert.False(t, IsZeroVector([]float32{0, 0.001}))
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 1.0, DotProduct([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 0.0, DotProduct([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, DotProduct([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	// Mismatched lengths use the shorter vector.
	assert.InDelta(t, 2.0, DotProduct([]float32{1, 1, 5}, []float32{2, 0}), 1e-6)
}
