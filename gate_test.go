package qcircuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauliGateMatricesAreUnitary(t *testing.T) {
	for _, g := range []Gate{PauliX(0), PauliY(0), PauliZ(0), NewHadamard(0)} {
		m, err := g.rawMatrix()
		require.NoError(t, err)
		assert.True(t, m.IsApproximatelyUnitary(Tolerance))
	}
}

func TestPhaseGatesMatchExpectedAngles(t *testing.T) {
	s, err := PhaseS(0).rawMatrix()
	require.NoError(t, err)
	assert.True(t, approxEqualComplex(s.At(1, 1), complex(0, 1), Tolerance))

	sDagger, err := PhaseSDagger(0).rawMatrix()
	require.NoError(t, err)
	assert.True(t, approxEqualComplex(sDagger.At(1, 1), complex(0, -1), Tolerance))

	tGate, err := PhaseT(0).rawMatrix()
	require.NoError(t, err)
	assert.True(t, approxEqualComplex(tGate.At(1, 1), complex(math.Sqrt2/2, math.Sqrt2/2), Tolerance))
}

func TestRotationGatesAreUnitaryForArbitraryAngles(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 7, math.Pi, 2 * math.Pi, -1.3} {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			m, err := NewRotation(axis, theta, 0).rawMatrix()
			require.NoError(t, err)
			assert.True(t, m.IsApproximatelyUnitary(Tolerance), "axis=%v theta=%v", axis, theta)
		}
	}
}

func TestRotationXAtPiEqualsNotUpToGlobalPhase(t *testing.T) {
	rx, err := RotationX(math.Pi, 0).rawMatrix()
	require.NoError(t, err)
	notM, err := NewNot(0).rawMatrix()
	require.NoError(t, err)
	// RX(pi) = -i*X: compare magnitudes of every element instead of phase.
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, absValue(notM.At(r, c)), absValue(rx.At(r, c)), 1e-9)
		}
	}
}

func absValue(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func TestHadamardRangeAndNotRange(t *testing.T) {
	gates := HadamardRange(0, 2, 4)
	require.Len(t, gates, 3)
	for _, g := range gates {
		assert.Equal(t, kindHadamard, g.kind)
	}

	notGates := NotRange(1, 3)
	require.Len(t, notGates, 2)
	for _, g := range notGates {
		assert.Equal(t, kindNot, g.kind)
	}
}

func TestSwapGateIsUnitaryAndSwapsBasisStates(t *testing.T) {
	g := Swap(0, 1)
	ext, err := g.Extract(2)
	require.NoError(t, err)
	assert.True(t, ext.Matrix.IsApproximatelyUnitary(Tolerance))

	factory := NewCircuitFactory(mustUnitaryMatrix(t, 1), mustStatevectorMatrix(t, 1))
	circuit, err := factory.MakeCircuit(2, []Gate{g})
	require.NoError(t, err)

	initial, err := NewStatevectorFromBitstring("01")
	require.NoError(t, err)
	result, err := circuit.Statevector(initial)
	require.NoError(t, err)

	want, err := NewStatevectorFromBitstring("10")
	require.NoError(t, err)
	assert.True(t, result.ApproxEqual(want.Matrix, Tolerance))
}

func TestCZGateLeavesNonFiringBasisStatesUntouchedAndFlipsPhaseWhenFiring(t *testing.T) {
	factory := NewCircuitFactory(mustUnitaryMatrix(t, 1), mustStatevectorMatrix(t, 1))
	circuit, err := factory.MakeCircuit(2, []Gate{CZ(0, 1)})
	require.NoError(t, err)

	initial, err := NewStatevectorFromBitstring("11")
	require.NoError(t, err)
	result, err := circuit.Statevector(initial)
	require.NoError(t, err)

	idx := 3 // "11"
	assert.True(t, approxEqualComplex(result.At(idx), -1, Tolerance))
}

func TestGateKindString(t *testing.T) {
	assert.Equal(t, "not", kindNot.String())
	assert.Equal(t, "controlled", kindControlled.String())
	assert.Equal(t, "unknown", gateKind(99).String())
}
