package entity

// FeatureVector is a sparse row in vectorizer feature space.
// Indices are strictly ascending and index into a space of width Dim.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// NNZ returns the number of stored (non-zero) entries
func (v FeatureVector) NNZ() int {
	return len(v.Indices)
}

// Dot returns the inner product of v with a dense weight row.
// Entries past the end of weights contribute nothing.
func (v FeatureVector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		if idx < len(weights) {
			sum += v.Values[i] * weights[idx]
		}
	}
	return sum
}

// Dense expands v into a slice of length Dim
func (v FeatureVector) Dense() []float64 {
	out := make([]float64, v.Dim)
	for i, idx := range v.Indices {
		out[idx] = v.Values[i]
	}
	return out
}
