package blocks

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// Rows of the stack, row 0 is the top.
	Rows = 20

	// Cols of the stack.
	Cols = 10
)

// Stack of settled blocks: Stack[y][x] is true if the cell is filled. It is a value: assignments copy it.
type Stack [Rows][Cols]bool

// ParseStack builds a stack from its bottom rows, written top to bottom with '#' for filled cells.
// Missing rows at the top are empty.
func ParseStack(rows ...string) *Stack {
	s := &Stack{}
	offset := Rows - len(rows)
	for ii, row := range rows {
		for x, ch := range row {
			if x < Cols && ch == '#' {
				s[offset+ii][x] = true
			}
		}
	}
	return s
}

// Collides returns whether shape placed with its top-left corner at column x and row y overlaps a
// filled cell or leaves the stack through the sides or the bottom. Parts of the shape above the top
// (y < 0) only collide with the sides.
func (s *Stack) Collides(shape Shape, x, y int) (collides bool) {
	shape.Blocks(func(dx, dy int) {
		bx, by := x+dx, y+dy
		if bx < 0 || bx >= Cols || by >= Rows {
			collides = true
		} else if by >= 0 && s[by][bx] {
			collides = true
		}
	})
	return
}

// LandingRow returns the row where shape rests when dropped from above the stack at column x.
//
// It is valid if the piece can enter the stack at all: it may rest partially above the top row, in
// which case y < 0 and the blocks above the top are lost when placed.
func (s *Stack) LandingRow(shape Shape, x int) (y int, valid bool) {
	y = -shape.Height()
	if s.Collides(shape, x, y) {
		return y, false
	}
	for !s.Collides(shape, x, y+1) {
		y++
	}
	return y, y > -shape.Height()
}

// Place returns a copy of the stack with shape added at (x, y). Blocks off the stack are dropped.
func (s Stack) Place(shape Shape, x, y int) Stack {
	shape.Blocks(func(dx, dy int) {
		bx, by := x+dx, y+dy
		if bx >= 0 && bx < Cols && by >= 0 && by < Rows {
			s[by][bx] = true
		}
	})
	return s
}

func isComplete(row [Cols]bool) bool {
	return lo.Count(row[:], true) == Cols
}

// CompleteLines returns the number of completely filled rows.
func (s *Stack) CompleteLines() int {
	return lo.CountBy(s[:], isComplete)
}

// ClearLines removes the complete rows, moving the rows above them down, and returns how many were
// removed.
func (s *Stack) ClearLines() (cleared int) {
	kept := lo.Reject(s[:], func(row [Cols]bool, _ int) bool { return isComplete(row) })
	cleared = Rows - len(kept)
	var result Stack
	copy(result[cleared:], kept)
	*s = result
	return
}

// IsEmpty returns whether no cell is filled.
func (s *Stack) IsEmpty() bool {
	return *s == (Stack{})
}

// String renders the stack with '#' for filled cells and '.' for empty ones.
func (s *Stack) String() string {
	lines := make([]string, Rows)
	for y, row := range s {
		lines[y] = strings.Join(lo.Map(row[:], func(filled bool, _ int) string {
			return lo.Ternary(filled, "#", ".")
		}), "")
	}
	return strings.Join(lines, "\n")
}
