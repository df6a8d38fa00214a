package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drillpath/board"
	"github.com/katalvlaran/drillpath/tsp"
)

func TestNewInstance_TooFewPoints(t *testing.T) {
	_, err := tsp.NewInstance(nil)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)

	_, err = tsp.NewInstance([][2]float64{{1, 1}})
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)
}

func TestNewInstance_Distances(t *testing.T) {
	in := mustInstance(t, [][2]float64{{0, 0}, {3, 0}, {3, 4}})

	assert.Equal(t, 3, in.N())
	assert.Equal(t, 0.0, in.Cost(1, 1))
	assert.InDelta(t, 3.0, in.Cost(0, 1), epsCost)
	assert.InDelta(t, 5.0, in.Cost(0, 2), epsCost)
	assert.InDelta(t, 4.0, in.Cost(2, 1), epsCost)
	assert.Equal(t, in.Cost(0, 2), in.Cost(2, 0))
	// 2·Σ cost[i][j] over the full matrix: 2·2·(3+5+4).
	assert.InDelta(t, 48.0, in.Infinite(), epsCost)
	assert.Equal(t, [2]float64{3, 4}, in.Point(2))
}

func TestNewInstance_CopiesInput(t *testing.T) {
	pts := [][2]float64{{0, 0}, {1, 0}}
	in := mustInstance(t, pts)
	pts[1] = [2]float64{9, 9}

	assert.Equal(t, [2]float64{1, 0}, in.Point(1))
	assert.InDelta(t, 1.0, in.Cost(0, 1), epsCost)
}

func TestNewInstance_DegenerateSentinel(t *testing.T) {
	in := mustInstance(t, [][2]float64{{2, 2}, {2, 2}, {2, 2}, {2, 2}})

	assert.Greater(t, in.Infinite(), 0.0)
	assert.Equal(t, 0.0, tsp.Evaluate(in, tsp.NewSolution(4)))
}

func TestInfinite_ExceedsAnyTour(t *testing.T) {
	in := mustInstance(t, rippledCircle(9))
	var k int64
	for k = 1; k <= 20; k++ {
		s := scrambled(9, k)
		assert.Less(t, tsp.Evaluate(in, s), in.Infinite())
	}
}

func TestFromBoard_RowMajorNodes(t *testing.T) {
	b, err := board.NewBoard([][]int{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	in, err := tsp.FromBoard(b)
	require.NoError(t, err)
	require.Equal(t, 3, in.N())

	assert.Equal(t, [2]float64{1, 0}, in.Point(0))
	assert.Equal(t, [2]float64{0, 1}, in.Point(1))
	assert.Equal(t, [2]float64{2, 2}, in.Point(2))
	assert.InDelta(t, math.Sqrt2, in.Cost(0, 1), epsCost)
}

func TestFromBoard_TooFewHoles(t *testing.T) {
	b, err := board.NewBoard([][]int{{0, 0}, {0, 1}})
	require.NoError(t, err)

	_, err = tsp.FromBoard(b)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)
}
