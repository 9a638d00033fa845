package qcircuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatevectorFromBitstring(t *testing.T) {
	sv, err := NewStatevectorFromBitstring("010")
	require.NoError(t, err)
	assert.Equal(t, 8, sv.Count())
	assert.Equal(t, complex(1.0, 0), sv.At(2))
}

func TestNewStatevectorFromBitstringRejectsBadCharacters(t *testing.T) {
	_, err := NewStatevectorFromBitstring("01x")
	assert.ErrorIs(t, err, ErrVectorLengthNotPow2)
}

func TestNewStatevectorFromBitstringRejectsEmptyString(t *testing.T) {
	_, err := NewStatevectorFromBitstring("")
	assert.ErrorIs(t, err, ErrVectorLengthNotPow2)
}

func TestNewStatevectorRejectsNonNormalizedVector(t *testing.T) {
	v, err := NewVector([]complex128{1, 1})
	require.NoError(t, err)
	_, err = NewStatevector(v)
	assert.ErrorIs(t, err, ErrStatevectorNotNormal)
}

func TestNewStatevectorAcceptsNormalizedVector(t *testing.T) {
	v, err := NewVector([]complex128{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)})
	require.NoError(t, err)
	sv, err := NewStatevector(v)
	require.NoError(t, err)
	assert.Equal(t, 2, sv.Count())
}

func TestNewStatevectorRejectsLengthNotPowerOfTwo(t *testing.T) {
	v, err := NewVector([]complex128{1, 0, 0})
	require.NoError(t, err)
	_, err = NewStatevector(v)
	assert.ErrorIs(t, err, ErrVectorLengthNotPow2)
}
