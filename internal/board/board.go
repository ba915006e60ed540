// Package board holds the board model shared by all the engines: a fixed-size square board where
// each cell, identified by a Pos, holds an Occupant.
//
// Only occupied cells are stored: absence from the board means Empty.
package board

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/janpfeifer/boardbots/internal/generics"
	"github.com/pkg/errors"
)

// Occupant of a board cell.
type Occupant uint8

const (
	Empty Occupant = iota
	PlayerA
	PlayerB
)

var occupantNames = [...]string{"Empty", "PlayerA", "PlayerB"}

// String returns the occupant name.
func (o Occupant) String() string {
	if int(o) < len(occupantNames) {
		return occupantNames[o]
	}
	return fmt.Sprintf("Occupant(%d)", o)
}

// IsPlayer returns whether o is PlayerA or PlayerB.
func (o Occupant) IsPlayer() bool {
	return o == PlayerA || o == PlayerB
}

// Opponent returns the other player. The opponent of Empty is Empty.
func (o Occupant) Opponent() Occupant {
	switch o {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// Pos identifies a cell. Each game picks its own meaning for the two coordinates:
// axial (q, r) for hex, (row, col) for the grid games.
type Pos [2]int8

// P is a shortcut to build a Pos from ints.
func P(a, b int) Pos {
	return Pos{int8(a), int8(b)}
}

// Add returns the position translated by delta.
func (pos Pos) Add(delta Pos) Pos {
	return Pos{pos[0] + delta[0], pos[1] + delta[1]}
}

// Sub returns the offset from pos2 to pos.
func (pos Pos) Sub(pos2 Pos) Pos {
	return Pos{pos[0] - pos2[0], pos[1] - pos2[1]}
}

// Distance returns the manhattan distance of two positions.
func (pos Pos) Distance(pos2 Pos) int {
	return int(generics.Abs(pos[0]-pos2[0])) + int(generics.Abs(pos[1]-pos2[1]))
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// ComparePos orders positions by the first coordinate and then the second (row-major for grids).
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return cmp.Compare(a[1], b[1])
}

// SortPositions sorts positions in row-major order.
func SortPositions(positions []Pos) {
	slices.SortFunc(positions, ComparePos)
}

// Board is a size x size board. The zero value is not usable, create it with New.
type Board struct {
	size  int
	cells map[Pos]Occupant
}

// New creates an empty board of the given size.
func New(size int) *Board {
	return &Board{size: size, cells: make(map[Pos]Occupant)}
}

// Size of the board side.
func (b *Board) Size() int {
	return b.size
}

// Center returns the center cell (rounded down for even sizes).
func (b *Board) Center() Pos {
	return P(b.size/2, b.size/2)
}

// InBounds returns whether pos is a cell of the board.
func (b *Board) InBounds(pos Pos) bool {
	return pos[0] >= 0 && int(pos[0]) < b.size && pos[1] >= 0 && int(pos[1]) < b.size
}

// At returns the occupant of pos. Out-of-bounds positions are Empty.
func (b *Board) At(pos Pos) Occupant {
	return b.cells[pos]
}

// IsEmptyAt returns whether pos has no occupant.
func (b *Board) IsEmptyAt(pos Pos) bool {
	_, found := b.cells[pos]
	return !found
}

// Set the occupant at pos. Setting Empty removes the cell from the board.
//
// Set does no validation: engines use it to mutate their scratch positions. Use Play for the live board.
func (b *Board) Set(pos Pos, o Occupant) {
	if o == Empty {
		delete(b.cells, pos)
		return
	}
	b.cells[pos] = o
}

// Play places the player's mark on an empty in-bounds cell. Live boards only grow, so
// this is the only mutation the game loop should use.
func (b *Board) Play(pos Pos, player Occupant) error {
	if !player.IsPlayer() {
		return errors.Errorf("invalid player %s playing at %s", player, pos)
	}
	if !b.InBounds(pos) {
		return errors.Errorf("position %s is out of the %dx%d board", pos, b.size, b.size)
	}
	if occupant := b.At(pos); occupant != Empty {
		return errors.Errorf("position %s is already taken by %s", pos, occupant)
	}
	b.cells[pos] = player
	return nil
}

// With sets pos to o, calls fn and restores the previous occupant of pos on every exit path of fn,
// including panics.
func (b *Board) With(pos Pos, o Occupant, fn func()) {
	previous := b.At(pos)
	b.Set(pos, o)
	defer b.Set(pos, previous)
	fn()
}

// NumOccupied returns the number of non-empty cells.
func (b *Board) NumOccupied() int {
	return len(b.cells)
}

// Count returns the number of cells owned by o.
func (b *Board) Count(o Occupant) (count int) {
	for _, occupant := range b.cells {
		if occupant == o {
			count++
		}
	}
	return
}

// IsEmpty returns whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	return len(b.cells) == 0
}

// IsFull returns whether every cell is occupied.
func (b *Board) IsFull() bool {
	return len(b.cells) >= b.size*b.size
}

// Clone makes a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: maps.Clone(b.cells)}
}

// Equal returns whether both boards have the same size and the same occupied cells.
func (b *Board) Equal(b2 *Board) bool {
	return b.size == b2.size && maps.Equal(b.cells, b2.cells)
}

// Positions iterates over all cells of the board in row-major order.
func (b *Board) Positions() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for a := range b.size {
			for c := range b.size {
				if !yield(P(a, c)) {
					return
				}
			}
		}
	}
}

// Occupied iterates over the occupied cells in row-major order, so iteration is deterministic.
func (b *Board) Occupied() iter.Seq2[Pos, Occupant] {
	return func(yield func(Pos, Occupant) bool) {
		for _, pos := range b.OccupiedPositions() {
			if !yield(pos, b.cells[pos]) {
				return
			}
		}
	}
}

// OccupiedPositions returns a newly allocated slice of the occupied positions in row-major order.
func (b *Board) OccupiedPositions() []Pos {
	positions := slices.Collect(maps.Keys(b.cells))
	SortPositions(positions)
	return positions
}

// EmptyPositions returns the empty cells in row-major order.
func (b *Board) EmptyPositions() (positions []Pos) {
	for pos := range b.Positions() {
		if b.IsEmptyAt(pos) {
			positions = append(positions, pos)
		}
	}
	return
}

// Result of a terminal check.
type Result uint8

const (
	Ongoing Result = iota
	Win
	Draw
)

var resultNames = [...]string{"Ongoing", "Win", "Draw"}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return fmt.Sprintf("Result(%d)", r)
}

// Outcome of a terminal check: Winner is only set if Result == Win.
// Line optionally holds the cells that made the win, for display.
type Outcome struct {
	Result Result
	Winner Occupant
	Line   []Pos
}

// IsTerminal returns whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o.Result != Ongoing
}

// String returns a human readable description of the outcome.
func (o Outcome) String() string {
	if o.Result == Win {
		return fmt.Sprintf("%s wins", o.Winner)
	}
	return o.Result.String()
}
