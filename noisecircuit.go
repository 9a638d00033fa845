package qcircuit

import (
	"fmt"

	"go.uber.org/zap"
)

// NoiseCircuit owns an ordered list of NoiseOperators, a qubit count,
// and the density-matrix strategy configuration.
type NoiseCircuit struct {
	qubitCount          int
	operators           []NoiseOperator
	densityMatrixConfig DensityMatrixConfiguration
}

// QubitCount returns the circuit's declared qubit count.
func (c NoiseCircuit) QubitCount() int { return c.qubitCount }

// DensityMatrix evolves initial through the circuit's operators in
// order. When no initial state is given,
// evolution starts from the pure state |0...0><0...0|.
func (c NoiseCircuit) DensityMatrix(initial ...DensityMatrix) (DensityMatrix, error) {
	var rho Matrix
	if len(initial) > 0 {
		dim := 1 << c.qubitCount
		if initial[0].Rows() != dim || initial[0].Columns() != dim {
			return DensityMatrix{}, ErrMatrixSizeNotPowerOf2
		}
		rho = initial[0].Matrix
	} else {
		zero, err := NewStatevectorFromBitstring(zeroBitstring(c.qubitCount))
		if err != nil {
			return DensityMatrix{}, err
		}
		pure, err := PureDensityMatrix(zero)
		if err != nil {
			return DensityMatrix{}, err
		}
		rho = pure.Matrix
	}

	zap.L().Debug("evolving density matrix",
		zap.Int("qubit_count", c.qubitCount),
		zap.Int("operator_count", len(c.operators)))

	for i, op := range c.operators {
		next, err := applyOperatorToDensity(op, rho, c.qubitCount, c.densityMatrixConfig)
		if err != nil {
			zap.L().Warn("noise operator application failed",
				zap.Int("operator_index", i), zap.Error(err))
			return DensityMatrix{}, &operatorError{Index: i, Err: err}
		}
		if !validateDensityInvariantsLoosely(next) {
			return DensityMatrix{}, &operatorError{Index: i, Err: ErrDensityNotHermitian}
		}
		rho = next
	}

	dm, err := NewDensityMatrix(rho)
	if err != nil {
		return DensityMatrix{}, err
	}
	return dm, nil
}

func zeroBitstring(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// validateDensityInvariantsLoosely re-checks Hermiticity after every
// step, at minimum once at the end. Eigenvalue positivity/trace is
// re-checked once, at the end, by NewDensityMatrix, since Hermitian
// eigenvalue extraction is the expensive part of the invariant check.
func validateDensityInvariantsLoosely(rho Matrix) bool {
	return rho.IsApproximatelyHermitian(Tolerance)
}

// operatorError wraps an error raised while a specific NoiseOperator in
// a NoiseCircuit's operator list was being applied, analogous to
// GateError for statevector evolution.
type operatorError struct {
	Index int
	Err   error
}

func (e *operatorError) Error() string {
	return fmt.Sprintf("qcircuit: noise operator %d failed: %v", e.Index, e.Err)
}

func (e *operatorError) Unwrap() error { return e.Err }
