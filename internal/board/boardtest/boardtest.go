// Package boardtest provides helper functions to create tests using boards.
package boardtest

import (
	"strings"

	"github.com/janpfeifer/boardbots/internal/board"
)

// FromRows builds a square board from an ASCII diagram, one string per row (first coordinate).
//
// 'X' or 'A' is PlayerA, 'O' or 'B' is PlayerB, and '.', '_' or '-' are empty cells. Spaces are
// ignored, so rows can be written as "X . O".
func FromRows(rows ...string) *board.Board {
	b := board.New(len(rows))
	for rowIdx, row := range rows {
		col := 0
		for _, ch := range row {
			switch ch {
			case ' ', '\t':
				continue
			case 'X', 'x', 'A':
				b.Set(board.P(rowIdx, col), board.PlayerA)
			case 'O', 'o', 'B':
				b.Set(board.P(rowIdx, col), board.PlayerB)
			case '.', '_', '-':
			default:
				panic("boardtest: unknown cell symbol " + string(ch) + " in row " + strings.TrimSpace(row))
			}
			col++
		}
	}
	return b
}

// Stone is an occupant at a position, to build sparse boards.
type Stone struct {
	Pos    board.Pos
	Player board.Occupant
}

// WithStones returns a board of the given size with the stones set.
func WithStones(size int, stones ...Stone) *board.Board {
	b := board.New(size)
	for _, s := range stones {
		b.Set(s.Pos, s.Player)
	}
	return b
}

// Line returns n stones of the player, starting at start and stepping by delta.
func Line(player board.Occupant, start, delta board.Pos, n int) []Stone {
	stones := make([]Stone, 0, n)
	pos := start
	for range n {
		stones = append(stones, Stone{Pos: pos, Player: player})
		pos = pos.Add(delta)
	}
	return stones
}
