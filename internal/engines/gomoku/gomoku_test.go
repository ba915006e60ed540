package gomoku

import (
	"fmt"
	"strings"
	"testing"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/board/boardtest"
	"github.com/janpfeifer/boardbots/internal/engines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	horizontal = board.P(0, 1)
	diagonal   = board.P(1, 1)
)

func stones(groups ...[]boardtest.Stone) *board.Board {
	var all []boardtest.Stone
	for _, g := range groups {
		all = append(all, g...)
	}
	return boardtest.WithStones(Size, all...)
}

func stone(player board.Occupant, row, col int) []boardtest.Stone {
	return []boardtest.Stone{{Pos: board.P(row, col), Player: player}}
}

// codes converts "0120" to a line of codes.
func codes(s string) []int8 {
	line := make([]int8, len(s))
	for ii, ch := range s {
		line[ii] = int8(ch - '0')
	}
	return line
}

func TestScoreLine(t *testing.T) {
	for _, tc := range []struct {
		line string
		want float64
	}{
		{"2000111110002", FiveWeight},
		{"2001111002", OpenFourWeight},
		{"2211110002", ClosedFourWeight},
		{"2011011002", ClosedFourWeight},
		{"2011100002", OpenThreeWeight},
		{"2010110002", OpenThreeWeight},
		{"2111000002", 0}, // Closed three is not scored.
		{"2001100002", OpenTwoWeight},
		{"2011000002", 0}, // Needs room on both sides: "01100" but no "00110".
		{"2110000002", 0},
		{"2001010002", 0},
		{"2000000002", 0},
		{"211112", 0}, // Four blocked on both sides.
	} {
		assert.Equalf(t, tc.want, scoreLine(codes(tc.line)), "line %q", tc.line)
	}
}

func TestEvaluate(t *testing.T) {
	e := New()
	b := stones(boardtest.Line(board.PlayerA, board.P(7, 6), horizontal, 3))
	assert.Equal(t, float64(OpenThreeWeight), e.Evaluate(b, board.PlayerA))
	assert.Equal(t, -DefaultOpponentWeight*OpenThreeWeight, e.Evaluate(b, board.PlayerB))
	assert.Equal(t, 0.0, e.Evaluate(board.New(Size), board.PlayerA))
}

func TestDetectTerminal(t *testing.T) {
	e := New()
	b := stones(boardtest.Line(board.PlayerA, board.P(3, 3), diagonal, 5), stone(board.PlayerB, 7, 8))
	for _, history := range [][]board.Pos{nil, {board.P(5, 5)}} {
		outcome := e.DetectTerminal(b, history)
		assert.Equal(t, board.Win, outcome.Result)
		assert.Equal(t, board.PlayerA, outcome.Winner)
		assert.Equal(t, []board.Pos{{3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}}, outcome.Line)
	}

	// Only the last move is checked when the history is given.
	assert.False(t, e.DetectTerminal(b, []board.Pos{board.P(7, 8)}).IsTerminal())

	b.Set(board.P(5, 5), board.Empty)
	assert.False(t, e.DetectTerminal(b, nil).IsTerminal())
}

func TestCandidates(t *testing.T) {
	e := New()
	assert.Equal(t, []board.Pos{center}, e.Candidates(board.New(Size)))

	b := stones(stone(board.PlayerA, 7, 7))
	candidates := e.Candidates(b)
	require.Len(t, candidates, 24)
	assert.Equal(t, []board.Pos{{6, 7}, {7, 6}, {7, 8}, {8, 7}}, candidates[:4])
	assert.NotContains(t, candidates, center)

	// Corner stone: neighbourhood clipped by the border.
	b = stones(stone(board.PlayerB, 0, 0))
	assert.Len(t, e.Candidates(b), 8)
}

func TestEmptyBoard(t *testing.T) {
	result := New().ChooseMove(board.New(Size), nil, board.PlayerA)
	require.True(t, result.Found)
	assert.Equal(t, board.P(7, 7), result.Move)
	require.NotEmpty(t, result.Trace)
	assert.Contains(t, result.Trace[len(result.Trace)-1], "opening book")
}

func TestImmediateWin(t *testing.T) {
	b := stones(
		boardtest.Line(board.PlayerA, board.P(7, 3), horizontal, 4),
		stone(board.PlayerB, 7, 2),
		boardtest.Line(board.PlayerB, board.P(10, 3), horizontal, 4),
		stone(board.PlayerA, 10, 2))
	result := New().ChooseMove(b, nil, board.PlayerA)
	require.True(t, result.Found)
	assert.Equal(t, board.P(7, 7), result.Move)
	require.Len(t, result.Trace, 3)
	assert.True(t, strings.HasPrefix(result.Trace[1], "[tactics] win"))
	assert.Contains(t, result.Trace[2], "win")
}

func TestMustBlock(t *testing.T) {
	b := stones(
		boardtest.Line(board.PlayerB, board.P(10, 3), horizontal, 4),
		stone(board.PlayerA, 10, 2),
		stone(board.PlayerA, 7, 7),
		stone(board.PlayerA, 6, 6))
	result := New().ChooseMove(b, nil, board.PlayerA)
	require.True(t, result.Found)
	assert.Equal(t, board.P(10, 7), result.Move)
	assert.True(t, strings.HasPrefix(result.Trace[1], "[tactics] block"))
	assert.Contains(t, result.Trace[len(result.Trace)-1], "block")
}

func TestSearchTrace(t *testing.T) {
	history := []board.Pos{{7, 7}, {8, 8}, {6, 9}}
	b := stones(stone(board.PlayerA, 7, 7), stone(board.PlayerB, 8, 8), stone(board.PlayerA, 6, 9))
	before := b.Clone()

	e := New()
	result := e.ChooseMove(b, history, board.PlayerB)
	require.True(t, result.Found)
	assert.True(t, b.IsEmptyAt(result.Move))
	assert.True(t, before.Equal(b), "ChooseMove changed the board")

	prefixes := []string{"[init]", "[tactics] safe", "[opening] Hua Yue", "[search]", "[candidates]", "[stats]", "[decision]"}
	require.Len(t, result.Trace, len(prefixes))
	for ii, prefix := range prefixes {
		assert.Truef(t, strings.HasPrefix(result.Trace[ii], prefix), "trace line #%d %q should start with %q",
			ii, result.Trace[ii], prefix)
	}

	match, found := ClassifyOpening(history)
	require.True(t, found)
	require.NotEmpty(t, match.KeyPointsOnBoard())
	assert.Contains(t, result.Trace[2], "key points: "+fmt.Sprint(match.KeyPointsOnBoard()))

	// Deterministic: same move and the same trace.
	assert.Equal(t, result, e.ChooseMove(b, history, board.PlayerB))
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "open-four attack", strategy(FiveWeight))
	assert.Equal(t, "open-three extension", strategy(OpenThreeWeight))
	assert.Equal(t, "open-two development", strategy(600))
	assert.Equal(t, "balanced", strategy(-1e6))
}

func TestRegistry(t *testing.T) {
	engine, err := engines.New("gomoku:depth=1,opponent_weight=2")
	require.NoError(t, err)
	assert.Equal(t, 1, engine.(*Engine).depth)
	assert.Equal(t, 2.0, engine.(*Engine).opponentWeight)
	assert.Equal(t, Size, engine.NewBoard().Size())

	_, err = engines.New("gomoku:width=0")
	assert.Error(t, err)
}
