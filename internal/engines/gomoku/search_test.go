package gomoku

import (
	"testing"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/board/boardtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchWidths(t *testing.T) {
	e := New()
	b := stones(stone(board.PlayerA, 7, 7))
	game := &searchGame{engine: e, grid: newGrid(b, board.PlayerB)}
	require.Len(t, game.grid.candidates(), 24)

	// Root: the number of plies left doesn't matter.
	for _, depthLeft := range []int{1, 2, 4} {
		assert.Lenf(t, game.Moves(depthLeft, true), DefaultRootWidth, "root with depthLeft=%d", depthLeft)
	}

	game.Play(board.P(7, 8), true)
	assert.Len(t, game.Moves(3, false), DefaultWidth)
	assert.Len(t, game.Moves(2, false), DefaultWidth)
	assert.Len(t, game.Moves(1, false), DefaultLeafWidth)
	game.Undo(board.P(7, 8))
	assert.Empty(t, game.played)
	assert.Len(t, game.Moves(4, true), DefaultRootWidth)

	// Custom widths through the registry parameters.
	engine, err := NewFromParams(map[string]string{"root_width": "3", "width": "2", "leaf_width": "1"})
	require.NoError(t, err)
	game = &searchGame{engine: engine.(*Engine), grid: newGrid(b, board.PlayerB)}
	assert.Len(t, game.Moves(2, true), 3)
	game.Play(board.P(7, 8), true)
	assert.Len(t, game.Moves(2, false), 2)
	assert.Len(t, game.Moves(1, false), 1)
}

func TestSearchLeafOnFive(t *testing.T) {
	e := New()
	b := stones(
		boardtest.Line(board.PlayerA, board.P(7, 3), horizontal, 4),
		boardtest.Line(board.PlayerB, board.P(9, 3), horizontal, 4))

	// PlayerA is the maximizing side: completing its five ends the search right away.
	game := &searchGame{engine: e, grid: newGrid(b, board.PlayerA)}
	_, isLeaf := game.Leaf(3, 0)
	assert.False(t, isLeaf)
	game.Play(board.P(7, 7), true)
	score, isLeaf := game.Leaf(3, 1)
	assert.True(t, isLeaf)
	assert.Equal(t, float64(FiveWeight), score)
	game.Undo(board.P(7, 7))

	// The minimizing side completing five is a loss, however many plies are left.
	game.Play(board.P(9, 7), false)
	score, isLeaf = game.Leaf(5, 1)
	assert.True(t, isLeaf)
	assert.Equal(t, float64(-FiveWeight), score)
	game.Undo(board.P(9, 7))

	// A move that doesn't make five is only a leaf at the depth limit.
	game.Play(board.P(0, 0), true)
	_, isLeaf = game.Leaf(1, 1)
	assert.False(t, isLeaf)
	score, isLeaf = game.Leaf(0, 1)
	assert.True(t, isLeaf)
	assert.Equal(t, e.evaluate(game.grid), score)
}
