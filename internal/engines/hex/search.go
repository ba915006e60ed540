package hex

import (
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
	"github.com/janpfeifer/boardbots/internal/searchers"
	"k8s.io/klog/v2"
)

// Candidates implements engines.Engine: the center for an empty board, otherwise every empty cell
// adjacent to an occupied one, closest to the center first (ties in row-major order).
func (e *Engine) Candidates(b *board.Board) []board.Pos {
	if b.IsEmpty() {
		return []board.Pos{b.Center()}
	}
	var candidates []board.Pos
	for pos := range b.Positions() {
		if !b.IsEmptyAt(pos) {
			continue
		}
		for _, n := range Neighbours(b, pos) {
			if !b.IsEmptyAt(n) {
				candidates = append(candidates, pos)
				break
			}
		}
	}
	size := b.Size()
	generics.StableSortBy(candidates, func(pos board.Pos) int { return doubledCenterDistance(pos, size) })
	return candidates
}

// searchGame adapts a scratch board to searchers.Game. Scores are from the perspective of player.
type searchGame struct {
	engine *Engine
	board  *board.Board
	player board.Occupant
}

var _ searchers.Game[board.Pos] = (*searchGame)(nil)

// Leaf evaluates every node: nodes at the depth limit, or already decided, are not expanded.
func (g *searchGame) Leaf(depthLeft, _ int) (float64, bool) {
	score := g.engine.evaluate(g.board, g.player)
	if depthLeft <= 0 || isDecided(score) {
		return float64(score), true
	}
	return 0, false
}

// Moves returns the candidates, limited to the beam width if at least 2 plies are left.
func (g *searchGame) Moves(depthLeft int, _ bool) []board.Pos {
	candidates := g.engine.Candidates(g.board)
	if depthLeft >= 2 {
		candidates = generics.Truncate(candidates, g.engine.beam)
	}
	if klog.V(3).Enabled() && depthLeft == g.engine.depth {
		klog.Infof("hex: %d root candidates: %v", len(candidates), candidates)
	}
	return candidates
}

func (g *searchGame) Play(move board.Pos, maximizing bool) {
	if maximizing {
		g.board.Set(move, g.player)
	} else {
		g.board.Set(move, g.player.Opponent())
	}
}

func (g *searchGame) Undo(move board.Pos) {
	g.board.Set(move, board.Empty)
}
