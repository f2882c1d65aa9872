package candidate

// haltonSequence draws the i-th (1-indexed) term of the Halton
// low-discrepancy sequence for the given prime base.
func haltonSequence(index int, base int) float64 {
	f := 1.0
	r := 0.0
	i := index
	for i > 0 {
		f /= float64(base)
		r += f * float64(i%base)
		i /= base
	}
	return r
}

// haltonTriple draws the i-th (1-indexed) point of the 3-dimensional
// Halton sequence using bases (2,3,5).
func haltonTriple(index int) (x, y, z float64) {
	return haltonSequence(index, 2), haltonSequence(index, 3), haltonSequence(index, 5)
}
