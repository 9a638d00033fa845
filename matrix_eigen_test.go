package qcircuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHermitianEigenvaluesOfDiagonal(t *testing.T) {
	m, err := NewMatrix([][]complex128{
		{3, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)

	eigen, err := m.HermitianEigenvalues()
	require.NoError(t, err)
	require.Len(t, eigen, 3)
	assert.InDelta(t, 1.0, eigen[0], 1e-8)
	assert.InDelta(t, 2.0, eigen[1], 1e-8)
	assert.InDelta(t, 3.0, eigen[2], 1e-8)
}

func TestHermitianEigenvaluesOfPauliX(t *testing.T) {
	x, err := NewMatrix([][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, err)

	eigen, err := x.HermitianEigenvalues()
	require.NoError(t, err)
	require.Len(t, eigen, 2)
	assert.InDelta(t, -1.0, eigen[0], 1e-8)
	assert.InDelta(t, 1.0, eigen[1], 1e-8)
}

func TestHermitianEigenvaluesRejectsNonHermitian(t *testing.T) {
	m, err := NewMatrix([][]complex128{{0, 1}, {0, 0}})
	require.NoError(t, err)

	_, err = m.HermitianEigenvalues()
	assert.ErrorIs(t, err, ErrNotHermitian)
}

func TestHermitianEigenvaluesRejectsNonSquare(t *testing.T) {
	m, err := NewMatrix([][]complex128{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)

	_, err = m.HermitianEigenvalues()
	assert.ErrorIs(t, err, ErrNotHermitian)
}
