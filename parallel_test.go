package qcircuit

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 37
	var counts [n]int32
	parallelFor(n, 8, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestParallelForSequentialFallback(t *testing.T) {
	var order []int
	parallelFor(5, 1, func(i int) {
		order = append(order, i)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestClampConcurrency(t *testing.T) {
	got, err := clampConcurrency(99, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = clampConcurrency(0, 4)
	assert.ErrorIs(t, err, ErrInvalidConcurrency)
}
