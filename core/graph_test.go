package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misopt/core"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := core.New(0, nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := core.New(3, [][2]int{{0, 3}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.New(3, [][2]int{{-1, 1}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestNew_Loops(t *testing.T) {
	_, err := core.New(2, [][2]int{{1, 1}})
	require.True(t, errors.Is(err, core.ErrLoopNotAllowed))

	g, err := core.New(2, [][2]int{{1, 1}, {0, 1}}, core.IgnoreLoops())
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	require.Equal(t, []int{0}, g.Neighbors(1))
}

func TestBuild_SymmetricSortedDeduplicated(t *testing.T) {
	g, err := core.New(4, [][2]int{{2, 0}, {0, 2}, {0, 1}, {3, 0}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
	assert.Equal(t, []int{0}, g.Neighbors(2))
	assert.Equal(t, 3, g.MaxDegree())
	assert.True(t, g.HasEdge(3, 0))
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, 9))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, g.Edges())
}

func TestCheckIndependent(t *testing.T) {
	g, err := core.New(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	require.NoError(t, g.CheckIndependent([]int{0, 2}))
	require.NoError(t, g.CheckIndependent(nil))
	require.ErrorIs(t, g.CheckIndependent([]int{0, 1}), core.ErrNotIndependent)
	require.ErrorIs(t, g.CheckIndependent([]int{0, 0}), core.ErrDuplicateVertex)
	require.ErrorIs(t, g.CheckIndependent([]int{7}), core.ErrVertexOutOfRange)
	require.NoError(t, g.CheckIndependent([]int{3, 1}))
}

func TestInducedSubgraph(t *testing.T) {
	// Path 0-1-2-3-4.
	g, err := core.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	sub, ids, err := g.InducedSubgraph([]int{4, 1, 2, 2})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, ids)
	require.Equal(t, 3, sub.Order())
	require.Equal(t, 1, sub.Size())
	require.True(t, sub.HasEdge(0, 1)) // 1-2
	require.Empty(t, sub.Neighbors(2)) // 4 lost its neighbor 3

	_, _, err = g.InducedSubgraph(nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)
	_, _, err = g.InducedSubgraph([]int{5})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

