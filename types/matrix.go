package types

import "strings"

// Matrix is a dense row-major matrix backed by a single contiguous
// slice: Data[r*Cols+c]. Rows and Cols are always positive — an "empty
// matrix" is represented as a zero-length Vector instead, per the data
// model's invariant.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix builds a matrix from row-major data. The caller is
// responsible for len(data) == rows*cols; kernels that build matrices
// internally always satisfy this directly rather than validating it.
func NewMatrix(rows, cols int, data []float64) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// NewZeroMatrix allocates a rows x cols matrix of zeros.
func NewZeroMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// NewIdentityMatrix builds an n x n identity matrix.
func NewIdentityMatrix(n int) Matrix {
	m := NewZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func (m Matrix) Type() TypeCode { return TYPE_MATRIX }

// At returns the element at (row, col), zero-based.
func (m Matrix) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

// Set assigns the element at (row, col), zero-based.
func (m Matrix) Set(row, col int, v float64) {
	m.Data[row*m.Cols+col] = v
}

// Row returns a freshly allocated copy of row r.
func (m Matrix) Row(r int) []float64 {
	out := make([]float64, m.Cols)
	copy(out, m.Data[r*m.Cols:(r+1)*m.Cols])
	return out
}

// Col returns a freshly allocated copy of column c.
func (m Matrix) Col(c int) []float64 {
	out := make([]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		out[r] = m.At(r, c)
	}
	return out
}

// Clone returns a matrix with its own backing array.
func (m Matrix) Clone() Matrix {
	out := make([]float64, len(m.Data))
	copy(out, m.Data)
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: out}
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	out := NewZeroMatrix(m.Cols, m.Rows)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

func (m Matrix) String() string {
	if m.Rows == 0 || m.Cols == 0 {
		return "[]"
	}
	rows := make([]string, m.Rows)
	for r := 0; r < m.Rows; r++ {
		cols := make([]string, m.Cols)
		for c := 0; c < m.Cols; c++ {
			cols[c] = Scalar{Val: m.At(r, c)}.String()
		}
		rows[r] = "[" + strings.Join(cols, ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func (m Matrix) Equal(other Value) bool {
	o, ok := other.(Matrix)
	if !ok || m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i := range m.Data {
		if !(Scalar{Val: m.Data[i]}).Equal(Scalar{Val: o.Data[i]}) {
			return false
		}
	}
	return true
}

func (m Matrix) Truthy() bool {
	return m.Rows > 0 && m.Cols > 0
}

// MaxAbs returns the largest-magnitude entry, used by several linear
// algebra kernels to scale their singularity thresholds.
func (m Matrix) MaxAbs() float64 {
	max := 0.0
	for _, v := range m.Data {
		a := v
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return max
}
