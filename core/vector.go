package core

import "math"

// NormalizeVector returns a unit-length copy of v.
// Stored and query vectors are normalized so that a plain dot product
// equals cosine similarity. A zero vector cannot be normalized and
// yields a zero vector of the same length.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	result := make([]float32, len(v))
	if magnitude == 0 {
		return result
	}
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// IsZeroVector reports whether v is empty or has no non-zero component.
// Cosine similarity is undefined for zero vectors, so they are rejected
// before search rather than silently scoring zero.
func IsZeroVector(v []float32) bool {
	for _, val := range v {
		if val != 0 {
			return false
		}
	}
	return true
}

// DotProduct computes the dot product of two vectors.
// For normalized vectors this is the cosine similarity.
func DotProduct(a, b []float32) float32 {
	var sum float32
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
