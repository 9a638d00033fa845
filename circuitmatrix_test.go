package qcircuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitMatrixElementMatchesExpand(t *testing.T) {
	x, err := NewMatrix([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)
	adapter := NewCircuitMatrix(3, x, []int{1})

	expanded, err := adapter.Expand(1)
	require.NoError(t, err)

	dim := adapter.Dim()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			assert.Equal(t, expanded.At(r, c), adapter.Element(r, c), "r=%d c=%d", r, c)
		}
	}
}

func TestCircuitMatrixRowMatchesExpandedRow(t *testing.T) {
	h := complex(0.7071067811865476, 0)
	hadamard, err := NewMatrix([][]complex128{{h, h}, {h, -h}})
	require.NoError(t, err)
	adapter := NewCircuitMatrix(2, hadamard, []int{0})

	expanded, err := adapter.Expand(1)
	require.NoError(t, err)

	for r := 0; r < adapter.Dim(); r++ {
		row, err := adapter.Row(r, 1)
		require.NoError(t, err)
		for c := 0; c < adapter.Dim(); c++ {
			assert.True(t, approxEqualComplex(row.At(c), expanded.At(r, c), Tolerance))
		}
	}
}

func TestCircuitMatrixExpandConcurrencyInvariant(t *testing.T) {
	x, err := NewMatrix([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)
	adapter := NewCircuitMatrix(3, x, []int{2})

	sequential, err := adapter.Expand(1)
	require.NoError(t, err)
	parallel, err := adapter.Expand(4)
	require.NoError(t, err)

	assert.True(t, sequential.ApproxEqual(parallel, Tolerance))
}

func TestCircuitMatrixLeavesUntouchedQubitsAlone(t *testing.T) {
	// A single-qubit X gate on qubit 0 within a 2-qubit circuit must act
	// as identity on qubit 1: E should be block-diagonal in qubit 1.
	x, err := NewMatrix([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)
	adapter := NewCircuitMatrix(2, x, []int{0})

	// |00> (index 0) should map entirely to |01> (index 1), never touching
	// the qubit-1-high subspace (indices 2, 3).
	assert.Equal(t, complex128(0), adapter.Element(2, 0))
	assert.Equal(t, complex128(0), adapter.Element(3, 0))
	assert.Equal(t, complex128(1), adapter.Element(1, 0))
}
