package gomoku

import (
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
)

// Size of the board side.
const Size = 15

// Codes stored in a grid, relative to the player the grid was built for.
const (
	free int8 = iota
	own
	opponent
)

// neighbourhood is the radius (in both axes) around existing stones where candidates are looked for.
const neighbourhood = 2

// lineDirections are the 4 axes of a five-in-a-row: horizontal, vertical and the two diagonals.
var lineDirections = [4]board.Pos{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// grid is a flat copy of the board from the point of view of one player, faster to scan than the
// sparse board.Board.
type grid [Size * Size]int8

func inGrid(pos board.Pos) bool {
	return pos[0] >= 0 && pos[0] < Size && pos[1] >= 0 && pos[1] < Size
}

func index(pos board.Pos) int {
	return int(pos[0])*Size + int(pos[1])
}

func gridPos(idx int) board.Pos {
	return board.P(idx/Size, idx%Size)
}

var center = board.P(Size/2, Size/2)

// newGrid converts b to a grid where player's stones are coded own and the other player's stones
// are coded opponent. Stones out of the Size x Size area are ignored.
func newGrid(b *board.Board, player board.Occupant) *grid {
	g := &grid{}
	for pos, occupant := range b.Occupied() {
		if !inGrid(pos) {
			continue
		}
		if occupant == player {
			g[index(pos)] = own
		} else {
			g[index(pos)] = opponent
		}
	}
	return g
}

// at returns the code at pos, or opponent for positions off the grid: the border blocks lines as an
// opponent stone would.
func (g *grid) at(pos board.Pos) int8 {
	if !inGrid(pos) {
		return opponent
	}
	return g[index(pos)]
}

func (g *grid) set(pos board.Pos, code int8) {
	g[index(pos)] = code
}

func (g *grid) isEmpty() bool {
	for _, code := range g {
		if code != free {
			return false
		}
	}
	return true
}

// run counts the consecutive stones with code starting after pos in the direction d, walking outward.
func (g *grid) run(pos, d board.Pos, code int8) (count int) {
	for p := pos.Add(d); inGrid(p) && g[index(p)] == code; p = p.Add(d) {
		count++
	}
	return
}

// fiveAt returns the cells of a line of 5 or more stones through pos, if the stone at pos makes one.
func (g *grid) fiveAt(pos board.Pos) (line []board.Pos, found bool) {
	if !inGrid(pos) || g[index(pos)] == free {
		return nil, false
	}
	code := g[index(pos)]
	for _, d := range lineDirections {
		back := g.run(pos, board.Pos{-d[0], -d[1]}, code)
		forward := g.run(pos, d, code)
		if back+forward+1 < 5 {
			continue
		}
		start := pos
		for range back {
			start = start.Sub(d)
		}
		for range back + forward + 1 {
			line = append(line, start)
			start = start.Add(d)
		}
		return line, true
	}
	return nil, false
}

// makesFive returns whether the stone at pos is part of a five-in-a-row.
func (g *grid) makesFive(pos board.Pos) bool {
	_, found := g.fiveAt(pos)
	return found
}

// wouldMakeFive returns whether placing code at the empty pos completes a five-in-a-row. The grid is
// restored before returning.
func (g *grid) wouldMakeFive(pos board.Pos, code int8) bool {
	g.set(pos, code)
	defer g.set(pos, free)
	return g.makesFive(pos)
}

// hasNeighbour returns whether any stone lies within the neighbourhood of pos.
func (g *grid) hasNeighbour(pos board.Pos) bool {
	for dr := -neighbourhood; dr <= neighbourhood; dr++ {
		for dc := -neighbourhood; dc <= neighbourhood; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := pos.Add(board.P(dr, dc)); inGrid(n) && g[index(n)] != free {
				return true
			}
		}
	}
	return false
}

// nearbyCells returns the empty cells with a stone in their neighbourhood, in row-major order.
func (g *grid) nearbyCells() (cells []board.Pos) {
	for idx, code := range g {
		if code != free {
			continue
		}
		if pos := gridPos(idx); g.hasNeighbour(pos) {
			cells = append(cells, pos)
		}
	}
	return
}

// candidates returns nearbyCells sorted by manhattan distance to the center, ties in row-major order.
func (g *grid) candidates() []board.Pos {
	cells := g.nearbyCells()
	generics.StableSortBy(cells, func(pos board.Pos) int { return pos.Distance(center) })
	return cells
}

// firstFive returns the first of cells (in order) where placing code makes five.
func (g *grid) firstFive(cells []board.Pos, code int8) (board.Pos, bool) {
	for _, pos := range cells {
		if g.wouldMakeFive(pos, code) {
			return pos, true
		}
	}
	return board.Pos{}, false
}
