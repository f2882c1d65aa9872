package distmatrix

// Matrix is a symmetric, zero-diagonal, row-major N x N distance matrix.
type Matrix struct {
	n      int
	values []float64
}

// NewMatrix allocates an n x n matrix with all entries zero.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, values: make([]float64, n*n)}
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int { return m.n }

// At returns the distance between i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.n+j]
}

// Set stores the distance between i and j, mirroring across the diagonal.
func (m *Matrix) Set(i, j int, v float64) {
	m.values[i*m.n+j] = v
	m.values[j*m.n+i] = v
}

// EstimateBytes returns the number of bytes an n x n float64 matrix
// requires, used by the memory guard before allocation.
func EstimateBytes(n int) uint64 {
	return uint64(n) * uint64(n) * 8
}
