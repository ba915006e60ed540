// Package blocks implements a placement advisor for the falling-block puzzle: given the stack of
// settled blocks and the falling piece, it recommends where the piece should land (column offset and
// rotation), using a single-ply greedy search scored by features of the resulting stack.
//
// It also includes a deterministic simulation of the game where the advisor plays every piece, see
// Game.
package blocks

import (
	"fmt"
	"strings"
)

// Kind of piece, the 7 tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
	NumKinds
)

var kindNames = [NumKinds]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Shape of a piece: Shape[y][x] is true where the piece has a block. Row 0 is the top.
type Shape [][]bool

// spawnShapes of each kind, in the orientation they enter the board.
var spawnShapes = [NumKinds]Shape{
	I: ParseShape("####"),
	J: ParseShape("#..", "###"),
	L: ParseShape("..#", "###"),
	O: ParseShape("##", "##"),
	S: ParseShape(".##", "##."),
	T: ParseShape(".#.", "###"),
	Z: ParseShape("##.", ".##"),
}

// Shape returns a copy of the spawning shape of the kind.
func (k Kind) Shape() Shape {
	return spawnShapes[k].Clone()
}

// ParseShape from rows where '#' is a block and any other character is empty.
func ParseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, ch := range row {
			shape[y][x] = ch == '#'
		}
	}
	return shape
}

// Height in rows.
func (s Shape) Height() int { return len(s) }

// Width in columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone makes a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y, row := range s {
		c[y] = append([]bool(nil), row...)
	}
	return c
}

// Rotate returns the shape rotated 90 degrees clockwise: row y of the result is column y of s read
// from the bottom up.
func (s Shape) Rotate() Shape {
	height, width := s.Height(), s.Width()
	rotated := make(Shape, width)
	for y := range width {
		rotated[y] = make([]bool, height)
		for x := range height {
			rotated[y][x] = s[height-1-x][y]
		}
	}
	return rotated
}

// Rotations returns the shape rotated 0, 1, 2 and 3 times. Symmetric shapes repeat orientations.
func (s Shape) Rotations() [4]Shape {
	var rotations [4]Shape
	rotations[0] = s
	for r := 1; r < 4; r++ {
		rotations[r] = rotations[r-1].Rotate()
	}
	return rotations
}

// Blocks calls fn with the offset (x, y) of each block of the shape, row by row.
func (s Shape) Blocks(fn func(x, y int)) {
	for y, row := range s {
		for x, filled := range row {
			if filled {
				fn(x, y)
			}
		}
	}
}

// Equal returns whether both shapes have the same blocks.
func (s Shape) Equal(s2 Shape) bool {
	return s.String() == s2.String()
}

// String renders the shape with '#' for blocks and '.' for empty cells, one line per row.
func (s Shape) String() string {
	lines := make([]string, len(s))
	for y, row := range s {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
