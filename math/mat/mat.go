/*package mat contains the small amount of dense linear algebra needed to
recover polynomial coefficients from sample points. Everything works on square
matrices stored in row-major order.
*/
package mat

import (
	"math"
)

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors contains the LU decomposition of a matrix with partial pivoting.
// Keeping it around allows the same system to be solved for many right hand
// sides.
type LUFactors struct {
	lu       Matrix
	pivot    []int
	d        float64
	singular bool
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Vandermonde returns the matrix whose i-th row is 1, xs[i], xs[i]^2, ...
func Vandermonde(xs []float64) *Matrix {
	n := len(xs)
	vals := make([]float64, n*n)
	for i, x := range xs {
		p := 1.0
		for j := 0; j < n; j++ {
			vals[i*n+j] = p
			p *= x
		}
	}
	return NewMatrix(vals, n, n)
}

// MultVector computes m * xs.
func (m *Matrix) MultVector(xs []float64) []float64 {
	if m.Width != len(xs) {
		panic("Multiplication of incompatible sizes.")
	}

	out := make([]float64, m.Height)
	for i := range out {
		off := i * m.Width
		for j, x := range xs {
			out[i] += m.Vals[off+j] * x
		}
	}
	return out
}

// SolveVector solves the equation m * xs = bs for xs. ok is false if m is
// singular.
func (m *Matrix) SolveVector(bs []float64) (xs []float64, ok bool) {
	luf := m.LU()
	if luf.Singular() {
		return nil, false
	}
	return luf.SolveVector(bs, make([]float64, len(bs))), true
}

// Determinant computes the determinant of a matrix.
func (m *Matrix) Determinant() float64 { return m.LU().Determinant() }

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	n := m.Width
	luf := &LUFactors{
		lu:    Matrix{make([]float64, n*n), n, n},
		pivot: make([]int, n),
		d:     1,
	}
	for i := range luf.pivot {
		luf.pivot[i] = i
	}

	lu := luf.lu.Vals
	copy(lu, m.Vals)

	// Doolittle elimination, choosing the largest remaining pivot in each
	// column.
	for k := 0; k < n; k++ {
		maxRow := findMaxRow(n, lu, k)
		if lu[maxRow*n+k] == 0 {
			luf.singular = true
			continue
		}
		if maxRow != k {
			swapRows(k, maxRow, n, lu)
			luf.pivot[k], luf.pivot[maxRow] = luf.pivot[maxRow], luf.pivot[k]
			luf.d = -luf.d
		}

		for i := k + 1; i < n; i++ {
			lu[i*n+k] /= lu[k*n+k]
			tmp := lu[i*n+k]
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= tmp * lu[k*n+j]
			}
		}
	}

	return luf
}

// Singular returns true if the decomposed matrix has no inverse.
func (luf *LUFactors) Singular() bool { return luf.singular }

// findMaxRow finds the row at or below col with the largest absolute value in
// column col.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, col
	for i := col; i < n; i++ {
		val := math.Abs(m[i*n+col])
		if val > max {
			max, maxRow = val, i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	for j := 0; j < n; j++ {
		lu[i1*n+j], lu[i2*n+j] = lu[i2*n+j], lu[i1*n+j]
	}
}

// SolveVector solves M * xs = bs for xs. bs and xs may point to the same
// memory. The result is meaningless if luf is Singular.
func (luf *LUFactors) SolveVector(bs, xs []float64) []float64 {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(bs) != luf.Width")
	} else if n != len(xs) {
		panic("len(xs) != luf.Width")
	}

	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		ys[i] = bs[luf.pivot[i]]
	}

	forwardSubst(n, luf.lu.Vals, ys)
	backSubst(n, luf.lu.Vals, ys, xs)
	return xs
}

// Solves L * y = b in place. L has an implicit unit diagonal.
func forwardSubst(n int, lu, ys []float64) {
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += lu[i*n+j] * ys[j]
		}
		ys[i] -= sum
	}
}

// Solves U * x = y for x.
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += lu[i*n+j] * xs[j]
		}
		xs[i] = (ys[i] - sum) / lu[i*n+i]
	}
}

// Determinant computes the determinant of the decomposed matrix.
func (luf *LUFactors) Determinant() float64 {
	if luf.singular {
		return 0
	}

	d := luf.d
	n := luf.lu.Width
	for i := 0; i < n; i++ {
		d *= luf.lu.Vals[i*n+i]
	}
	return d
}
