package qcircuit

// Matrix is a dense, column-major, complex-valued matrix. It is an
// immutable value: every operation that would "mutate" returns a new
// Matrix. The backing buffer can be shared between a Matrix and any
// Matrix produced from it by Slice — a reference-counted contiguous
// complex array plus (startIndex, rowCount, columnCount); Go's garbage
// collector keeps the shared buffer alive for as long as any Matrix
// views it, so no explicit refcounting is needed.
type Matrix struct {
	rows, cols int
	buf        []complex128
	start      int // offset into buf of column 0, row 0
}

// Rows and Columns report the matrix's shape.
func (m Matrix) Rows() int    { return m.rows }
func (m Matrix) Columns() int { return m.cols }

// At reads the element at (r, c): buffer[start + c*rowCount + r].
func (m Matrix) At(r, c int) complex128 {
	return m.buf[m.start+c*m.rows+r]
}

// NewMatrix builds a Matrix from a row-major literal: rows[i][j] is the
// element at row i, column j. All rows must have the same, non-zero
// length, and there must be at least one row.
func NewMatrix(rows [][]complex128) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrEmptyRowList
	}
	cols := len(rows[0])
	if cols == 0 {
		return Matrix{}, ErrEmptyRow
	}
	for _, row := range rows {
		if len(row) != cols {
			return Matrix{}, ErrRowLengthMismatch
		}
	}

	r := len(rows)
	buf := make([]complex128, r*cols)
	for c := 0; c < cols; c++ {
		for i := 0; i < r; i++ {
			buf[c*r+i] = rows[i][c]
		}
	}
	return Matrix{rows: r, cols: cols, buf: buf}, nil
}

// MakeMatrix fills an r x c matrix column-major by calling f(row, col)
// for every cell, fanning rows across up to concurrency workers.
// concurrency is clamped to min(concurrency, r*c) and must be >= 1.
func MakeMatrix(r, c, concurrency int, f func(row, col int) complex128) (Matrix, error) {
	if r < 1 || c < 1 {
		return Matrix{}, ErrInvalidDimension
	}
	concurrency, err := clampConcurrency(concurrency, r*c)
	if err != nil {
		return Matrix{}, err
	}

	buf := make([]complex128, r*c)
	parallelFor(r, concurrency, func(row int) {
		for col := 0; col < c; col++ {
			buf[col*r+row] = f(row, col)
		}
	})
	return Matrix{rows: r, cols: c, buf: buf}, nil
}

// MakeMatrixWithRowFactory is MakeMatrix's two-phase variant: rowFactory
// computes expensive shared per-row state once, and cellFactory
// combines that state with the column index. This lets a caller shape
// the independent work unit around a whole row rather than a single
// cell, so expensive per-row work can be shared across that row's
// columns.
func MakeMatrixWithRowFactory(r, c, concurrency int, rowFactory func(row int) Vector, cellFactory func(row, col int, rowVec Vector) complex128) (Matrix, error) {
	if r < 1 || c < 1 {
		return Matrix{}, ErrInvalidDimension
	}
	concurrency, err := clampConcurrency(concurrency, r*c)
	if err != nil {
		return Matrix{}, err
	}

	buf := make([]complex128, r*c)
	parallelFor(r, concurrency, func(row int) {
		rowVec := rowFactory(row)
		for col := 0; col < c; col++ {
			buf[col*r+row] = cellFactory(row, col, rowVec)
		}
	})
	return Matrix{rows: r, cols: c, buf: buf}, nil
}

// Slice returns a view over [startCol, startCol+count) columns, sharing
// this matrix's backing buffer (no copy).
func (m Matrix) Slice(startCol, count int) (Matrix, error) {
	if startCol < 0 || startCol > m.cols {
		return Matrix{}, ErrColumnOutOfRange
	}
	if count < 0 || startCol+count > m.cols {
		return Matrix{}, ErrColumnCountOutOfRange
	}
	return Matrix{
		rows:  m.rows,
		cols:  count,
		buf:   m.buf,
		start: m.start + startCol*m.rows,
	}, nil
}

// ApproxEqual reports whether every element of m and other agree
// elementwise within tol.
func (m Matrix) ApproxEqual(other Matrix, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			if !approxEqualComplex(m.At(r, c), other.At(r, c), tol) {
				return false
			}
		}
	}
	return true
}

// IsApproximatelyUnitary reports whether M·M* ≈ I and M*·M ≈ I.
func (m Matrix) IsApproximatelyUnitary(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	id, err := Identity(m.rows)
	if err != nil {
		return false
	}
	left, err := Multiply(m, None, m, Adjoint)
	if err != nil {
		return false
	}
	if !left.ApproxEqual(id, tol) {
		return false
	}
	right, err := Multiply(m, Adjoint, m, None)
	if err != nil {
		return false
	}
	return right.ApproxEqual(id, tol)
}

// IsApproximatelyHermitian reports whether M ≈ M*.
func (m Matrix) IsApproximatelyHermitian(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	for c := 0; c < m.cols; c++ {
		for r := 0; r <= c; r++ {
			a := m.At(r, c)
			b := m.At(c, r)
			if !approxEqualComplex(a, conj(b), tol) {
				return false
			}
		}
	}
	return true
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

// Add returns m + other. Both matrices must have the same shape.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, &DimensionError{Op: "add", LHS: [2]int{m.rows, m.cols}, RHS: [2]int{other.rows, other.cols}, Err: ErrShapeMismatch}
	}
	buf := make([]complex128, m.rows*m.cols)
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			buf[c*m.rows+r] = m.At(r, c) + other.At(r, c)
		}
	}
	return Matrix{rows: m.rows, cols: m.cols, buf: buf}, nil
}

// Scale returns s*m.
func (m Matrix) Scale(s complex128) Matrix {
	buf := make([]complex128, m.rows*m.cols)
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			buf[c*m.rows+r] = s * m.At(r, c)
		}
	}
	return Matrix{rows: m.rows, cols: m.cols, buf: buf}
}

// Identity returns the n x n identity matrix.
func Identity(n int) (Matrix, error) {
	return MakeMatrix(n, n, 1, func(r, c int) complex128 {
		if r == c {
			return 1
		}
		return 0
	})
}
