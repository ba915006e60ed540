package gomoku

import (
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
	"github.com/janpfeifer/boardbots/internal/searchers"
)

// searchGame adapts a grid to searchers.Game. The maximizing side plays own stones.
type searchGame struct {
	engine *Engine
	grid   *grid
	played []board.Pos
}

var _ searchers.Game[board.Pos] = (*searchGame)(nil)

// Leaf is reached when the last move made five, or at the depth limit.
func (g *searchGame) Leaf(depthLeft, _ int) (float64, bool) {
	if n := len(g.played); n > 0 {
		last := g.played[n-1]
		if g.grid.makesFive(last) {
			if g.grid.at(last) == own {
				return FiveWeight, true
			}
			return -FiveWeight, true
		}
	}
	if depthLeft <= 0 {
		return g.engine.evaluate(g.grid), true
	}
	return 0, false
}

// Moves returns the candidates closest to the center: rootWidth at the root, width in the middle of
// the tree and leafWidth right above the leaves.
func (g *searchGame) Moves(depthLeft int, _ bool) []board.Pos {
	width := g.engine.width
	switch {
	case len(g.played) == 0:
		width = g.engine.rootWidth
	case depthLeft <= 1:
		width = g.engine.leafWidth
	}
	return generics.Truncate(g.grid.candidates(), width)
}

func (g *searchGame) Play(move board.Pos, maximizing bool) {
	if maximizing {
		g.grid.set(move, own)
	} else {
		g.grid.set(move, opponent)
	}
	g.played = append(g.played, move)
}

func (g *searchGame) Undo(move board.Pos) {
	g.grid.set(move, free)
	g.played = g.played[:len(g.played)-1]
}
