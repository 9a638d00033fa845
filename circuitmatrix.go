package qcircuit

// CircuitMatrix is the bit-permutation adapter: given a qubit count N
// and a base matrix B acting on the qubits in inputs, it exposes the
// logical 2^N x 2^N operator E that B induces over the full circuit,
// defined by bit-permutation indexing, without ever materialising it.
type CircuitMatrix struct {
	qubitCount int
	base       Matrix
	inputs     []int // inputs[0] is baseRow/baseCol's most significant bit
	remaining  []int // descending qubit order, complement of inputs
}

// NewCircuitMatrix builds the adapter for base acting on inputs within
// a qubitCount-qubit circuit.
func NewCircuitMatrix(qubitCount int, base Matrix, inputs []int) CircuitMatrix {
	inSet := make(map[int]struct{}, len(inputs))
	for _, q := range inputs {
		inSet[q] = struct{}{}
	}
	remaining := make([]int, 0, qubitCount-len(inputs))
	for q := qubitCount - 1; q >= 0; q-- {
		if _, ok := inSet[q]; !ok {
			remaining = append(remaining, q)
		}
	}
	return CircuitMatrix{
		qubitCount: qubitCount,
		base:       base,
		inputs:     append([]int(nil), inputs...),
		remaining:  remaining,
	}
}

// Dim is the adapter's logical dimension, 2^qubitCount.
func (a CircuitMatrix) Dim() int { return 1 << a.qubitCount }

// decomposeBits reads index's bits at positions (positions[0] is the
// most significant bit of the result); qubit 0 is the
// least-significant bit of index.
func decomposeBits(index int, positions []int) int {
	result := 0
	for _, p := range positions {
		bit := (index >> p) & 1
		result = (result << 1) | bit
	}
	return result
}

// Element reads E[r, c] without materialising E.
func (a CircuitMatrix) Element(r, c int) complex128 {
	if decomposeBits(r, a.remaining) != decomposeBits(c, a.remaining) {
		return 0
	}
	baseRow := decomposeBits(r, a.inputs)
	baseCol := decomposeBits(c, a.inputs)
	return a.base.At(baseRow, baseCol)
}

// Row materialises row r of E as a length-Dim() Vector, fanning across
// up to expansionConcurrency workers.
func (a CircuitMatrix) Row(r, expansionConcurrency int) (Vector, error) {
	return MakeVector(a.Dim(), expansionConcurrency, func(c int) complex128 {
		return a.Element(r, c)
	})
}

// Expand materialises the full Dim() x Dim() matrix, fanning across up
// to expansionConcurrency workers.
func (a CircuitMatrix) Expand(expansionConcurrency int) (Matrix, error) {
	dim := a.Dim()
	return MakeMatrix(dim, dim, expansionConcurrency, func(r, c int) complex128 {
		return a.Element(r, c)
	})
}
