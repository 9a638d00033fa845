package qcircuit

// Mode names a transposition to apply to an operand before multiplying:
// carrying the enum alongside the matrix when calling the
// multiplication primitive mirrors a BLAS-equivalent kernel's
// per-operand transposition flag rather than materialising a
// transposed copy.
type Mode int

const (
	None Mode = iota
	Adjoint
	Transpose
)

// effectiveShape returns the (rows, cols) of m as seen under mode.
func effectiveShape(m Matrix, mode Mode) (rows, cols int) {
	if mode == None {
		return m.rows, m.cols
	}
	return m.cols, m.rows
}

// effectiveAt reads element (r, c) of m as seen under mode.
func effectiveAt(m Matrix, mode Mode, r, c int) complex128 {
	switch mode {
	case None:
		return m.At(r, c)
	case Transpose:
		return m.At(c, r)
	case Adjoint:
		return conj(m.At(c, r))
	default:
		return m.At(r, c)
	}
}

// Multiply computes left^leftMode · right^rightMode, the dense matrix
// product this module would otherwise take from a BLAS-equivalent
// kernel. No dependency available to this module
// binds to gonum or a cgo BLAS/LAPACK implementation (see DESIGN.md),
// so this is a portable fallback: a plain triple loop honouring the
// per-operand transposition flags instead of materialising transposed
// copies.
func Multiply(left Matrix, leftMode Mode, right Matrix, rightMode Mode) (Matrix, error) {
	lRows, lCols := effectiveShape(left, leftMode)
	rRows, rCols := effectiveShape(right, rightMode)
	if lCols != rRows {
		return Matrix{}, &DimensionError{
			Op:  "multiply",
			LHS: [2]int{lRows, lCols},
			RHS: [2]int{rRows, rCols},
			Err: ErrMultiplyDimension,
		}
	}

	buf := make([]complex128, lRows*rCols)
	for c := 0; c < rCols; c++ {
		for r := 0; r < lRows; r++ {
			var sum complex128
			for k := 0; k < lCols; k++ {
				sum += effectiveAt(left, leftMode, r, k) * effectiveAt(right, rightMode, k, c)
			}
			buf[c*lRows+r] = sum
		}
	}
	return Matrix{rows: lRows, cols: rCols, buf: buf}, nil
}

// MultiplyPlain is sugar for Multiply(left, None, right, None).
func MultiplyPlain(left, right Matrix) (Matrix, error) {
	return Multiply(left, None, right, None)
}
