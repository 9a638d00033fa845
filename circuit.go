package qcircuit

import (
	"strings"

	"go.uber.org/zap"
)

// Circuit owns an ordered gate list, a qubit count, and the strategy
// configuration used to evolve it. Logging at the façade boundary
// follows a per-task zap.L() pattern: debug on entry, warn when a gate
// application or the unitary accumulation fails, never inside the hot
// per-cell loops below it.
type Circuit struct {
	qubitCount        int
	gates             []Gate
	unitaryConfig     UnitaryConfiguration
	statevectorConfig StatevectorConfiguration
}

// QubitCount returns the circuit's declared qubit count.
func (c Circuit) QubitCount() int { return c.qubitCount }

// Gates returns a copy of the circuit's ordered gate list.
func (c Circuit) Gates() []Gate { return append([]Gate(nil), c.gates...) }

// Statevector evolves initial through the circuit's gates in order
// using the configured statevector strategy. When no
// initial state is given, evolution starts from |0...0>.
func (c Circuit) Statevector(initial ...Statevector) (Statevector, error) {
	var v Vector
	if len(initial) > 0 {
		if initial[0].Count() != 1<<c.qubitCount {
			return Statevector{}, ErrVectorLengthNotPow2
		}
		v = initial[0].Vector
	} else {
		zero, err := NewStatevectorFromBitstring(strings.Repeat("0", c.qubitCount))
		if err != nil {
			return Statevector{}, err
		}
		v = zero.Vector
	}

	zap.L().Debug("evolving statevector",
		zap.Int("qubit_count", c.qubitCount),
		zap.Int("gate_count", len(c.gates)))

	for i, g := range c.gates {
		next, err := applyGateToVector(g, v, c.qubitCount, c.statevectorConfig)
		if err != nil {
			zap.L().Warn("gate application failed",
				zap.Int("gate_index", i), zap.Error(err))
			return Statevector{}, gateThrewError(i, g, err)
		}
		v = next
	}

	if !approxEqualFloat(v.NormSquared(), 1, Tolerance) {
		return Statevector{}, ErrPrecisionLoss
	}
	return Statevector{Vector: v}, nil
}

// Unitary folds the circuit's gates into a single 2^N x 2^N operator.
func (c Circuit) Unitary() (Matrix, error) {
	zap.L().Debug("accumulating unitary",
		zap.Int("qubit_count", c.qubitCount),
		zap.Int("gate_count", len(c.gates)))

	u, err := accumulateUnitary(c.gates, c.qubitCount, c.unitaryConfig.expansionConcurrency)
	if err != nil {
		zap.L().Warn("unitary accumulation failed", zap.Error(err))
		return Matrix{}, err
	}
	return u, nil
}
