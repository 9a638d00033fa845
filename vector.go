package qcircuit

// Vector is a Matrix with exactly one column; all vector algebra is
// delegated to Matrix.
type Vector struct {
	Matrix
}

// NewVector builds a Vector from a flat list of amplitudes.
func NewVector(values []complex128) (Vector, error) {
	rows := make([][]complex128, len(values))
	for i, v := range values {
		rows[i] = []complex128{v}
	}
	m, err := NewMatrix(rows)
	if err != nil {
		return Vector{}, err
	}
	return Vector{Matrix: m}, nil
}

// MakeVector fills a length-n vector by calling f(i) for every index,
// fanning across up to concurrency workers, mirroring MakeMatrix.
func MakeVector(n, concurrency int, f func(i int) complex128) (Vector, error) {
	m, err := MakeMatrix(n, 1, concurrency, func(r, _ int) complex128 { return f(r) })
	if err != nil {
		return Vector{}, err
	}
	return Vector{Matrix: m}, nil
}

// Count is the vector's length.
func (v Vector) Count() int { return v.Rows() }

// At reads amplitude i.
func (v Vector) At(i int) complex128 { return v.Matrix.At(i, 0) }

// NormSquared is the inner product of v with itself (real part).
func (v Vector) NormSquared() float64 {
	sum := 0.0
	for i := 0; i < v.Count(); i++ {
		sum += absSquared(v.At(i))
	}
	return sum
}

// InnerProduct computes <v, other> = sum_i conj(v[i]) * other[i].
func (v Vector) InnerProduct(other Vector) (complex128, error) {
	if v.Count() != other.Count() {
		return 0, &DimensionError{Op: "inner product", LHS: [2]int{v.Count(), 1}, RHS: [2]int{other.Count(), 1}, Err: ErrShapeMismatch}
	}
	var sum complex128
	for i := 0; i < v.Count(); i++ {
		sum += conj(v.At(i)) * other.At(i)
	}
	return sum, nil
}
