package gomoku

import (
	"testing"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetries(t *testing.T) {
	offsets := []board.Pos{{0, 1}, {1, 1}, {-2, 1}, {1, -2}}
	for s := range Symmetry(NumSymmetries) {
		for _, d := range offsets {
			assert.Equalf(t, d, s.Invert(s.Apply(d)), "symmetry %d, offset %s", s, d)
			assert.Equal(t, d.Distance(board.Pos{}), s.Apply(d).Distance(board.Pos{}))
		}
	}
	assert.Equal(t, board.Pos{-1, 2}, Symmetry(0).Apply(board.Pos{-1, 2}))
}

func TestClassifyOpening(t *testing.T) {
	assert.Equal(t, 26, NumOpenings())

	// Diagonal second move, canonical orientation.
	match, found := ClassifyOpening([]board.Pos{{7, 7}, {8, 8}, {6, 9}})
	require.True(t, found)
	assert.Equal(t, "Hua Yue", match.Romanized)
	assert.Equal(t, Diagonal, match.Family)
	assert.Equal(t, BlackFavored, match.Status)
	assert.Equal(t, Symmetry(0), match.Symmetry)
	assert.Equal(t, []board.Pos{{8, 6}, {6, 8}, {5, 9}, {7, 8}}, match.KeyPointsOnBoard())

	// Orthogonal second move.
	match, found = ClassifyOpening([]board.Pos{{7, 7}, {7, 8}, {8, 9}})
	require.True(t, found)
	assert.Equal(t, "Heng Xing", match.Romanized)
	assert.Equal(t, Orthogonal, match.Family)

	// Same opening mirrored: the second move goes left instead of right.
	match, found = ClassifyOpening([]board.Pos{{7, 7}, {7, 6}, {8, 5}})
	require.True(t, found)
	assert.Equal(t, "Heng Xing", match.Romanized)
	assert.Equal(t, Symmetry(2), match.Symmetry)

	// Pu Yue rotated by 90 degrees: key points map back to the board.
	match, found = ClassifyOpening([]board.Pos{{7, 7}, {8, 7}, {6, 9}})
	require.True(t, found)
	assert.Equal(t, "Pu Yue", match.Romanized)
	for ii, kp := range match.KeyPoints {
		assert.Equal(t, match.Symmetry.Apply(match.KeyPointsOnBoard()[ii].Sub(center)), kp)
	}

	// Not matched: first move away from the center, too short, or a third move too far away.
	_, found = ClassifyOpening([]board.Pos{{7, 6}, {8, 8}, {6, 9}})
	assert.False(t, found)
	_, found = ClassifyOpening([]board.Pos{{7, 7}, {8, 8}})
	assert.False(t, found)
	_, found = ClassifyOpening([]board.Pos{{7, 7}, {8, 8}, {2, 2}})
	assert.False(t, found)
	_, found = ClassifyOpening([]board.Pos{{7, 7}, {10, 10}, {6, 9}})
	assert.False(t, found)
}
