package qcircuit

// accumulateUnitary folds gates into a single 2^qubitCount x
// 2^qubitCount operator via the full-matrix strategy: U starts at
// identity, and each gate's expanded operator is left-multiplied in
// (U <- E_i * U).
func accumulateUnitary(gates []Gate, qubitCount, expansionConcurrency int) (Matrix, error) {
	if len(gates) == 0 {
		return Matrix{}, ErrEmptyGateList
	}

	dim := 1 << qubitCount
	u, err := Identity(dim)
	if err != nil {
		return Matrix{}, err
	}

	for i, g := range gates {
		ext, err := g.Extract(qubitCount)
		if err != nil {
			return Matrix{}, gateThrewError(i, g, err)
		}
		adapter := NewCircuitMatrix(qubitCount, ext.Matrix, ext.OrderedInputs)
		expanded, err := adapter.Expand(expansionConcurrency)
		if err != nil {
			return Matrix{}, gateThrewError(i, g, err)
		}
		u, err = MultiplyPlain(expanded, u)
		if err != nil {
			return Matrix{}, gateThrewError(i, g, err)
		}
	}

	if !u.IsApproximatelyUnitary(Tolerance) {
		return Matrix{}, ErrAccumulatedNotUnitary
	}
	return u, nil
}
