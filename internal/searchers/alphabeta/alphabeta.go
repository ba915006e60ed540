// Package alphabeta implements a depth-bounded minimax search, with optional alpha-beta pruning,
// over any searchers.Game.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"math"
	"time"

	"github.com/janpfeifer/boardbots/internal/searchers"
	"k8s.io/klog/v2"
)

// DefaultMaxDepth for search.
const DefaultMaxDepth = 2

// Searcher holds the search configuration. It holds no state between searches other than the
// statistics of the last one, so it must not be shared by concurrent searches.
type Searcher[M any] struct {
	maxDepth int
	pruning  bool
	name     string
	stats    searchers.Stats
}

// Result of a search: the chosen move and its minimax value.
// Found is false if the root had no moves to explore or was itself a leaf.
type Result[M any] struct {
	Move  M
	Score float64
	Found bool
}

// New returns a minimax searcher with alpha-beta pruning enabled, and the DefaultMaxDepth.
// See methods Searcher.With... for other configurations.
func New[M any]() *Searcher[M] {
	return &Searcher[M]{maxDepth: DefaultMaxDepth, pruning: true}
}

// WithMaxDepth sets the max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
func (ab *Searcher[M]) WithMaxDepth(maxDepth int) *Searcher[M] {
	ab.maxDepth = maxDepth
	return ab
}

// WithPruning enables or disables alpha-beta pruning. Without pruning it is a plain minimax: slower,
// but every root move gets an exact value.
func (ab *Searcher[M]) WithPruning(pruning bool) *Searcher[M] {
	ab.pruning = pruning
	return ab
}

// WithName sets the name used when logging the search statistics.
func (ab *Searcher[M]) WithName(name string) *Searcher[M] {
	ab.name = name
	return ab
}

// MaxDepth returns the configured max depth.
func (ab *Searcher[M]) MaxDepth() int {
	return ab.maxDepth
}

// Stats returns the statistics of the last search.
func (ab *Searcher[M]) Stats() searchers.Stats {
	return ab.stats
}

// Search runs minimax from the current position of game, with the maximizing side to move.
//
// Every Play is matched by an Undo before Search returns, so the game is back to its initial position.
// Among moves of equal value the first one in Game.Moves order is chosen.
func (ab *Searcher[M]) Search(game searchers.Game[M]) Result[M] {
	start := time.Now()
	ab.stats = searchers.Stats{}
	result := ab.recursion(game, ab.maxDepth, 0, math.Inf(-1), math.Inf(1), true)
	if klog.V(2).Enabled() {
		elapsed := time.Since(start)
		klog.Infof("%s search (depth=%d, pruning=%v): %s in %s, nodes/s=%.1f, best score=%g",
			ab.name, ab.maxDepth, ab.pruning, ab.stats, elapsed,
			float64(ab.stats.Nodes)/elapsed.Seconds(), result.Score)
	}
	return result
}

// recursion of the minimax algorithm, with depthLeft plies to go. Each call returns its own
// {move, score} pair, the caller folds over its children.
func (ab *Searcher[M]) recursion(game searchers.Game[M], depthLeft, ply int, alpha, beta float64, maximizing bool) (
	best Result[M]) {
	ab.stats.Nodes++
	if score, isLeaf := game.Leaf(depthLeft, ply); isLeaf {
		ab.stats.Leaves++
		return Result[M]{Score: score}
	}

	moves := game.Moves(depthLeft, maximizing)
	if len(moves) == 0 {
		// Nothing to play: score the position as it is.
		ab.stats.Leaves++
		score, _ := game.Leaf(0, ply)
		return Result[M]{Score: score}
	}

	if maximizing {
		best.Score = math.Inf(-1)
	} else {
		best.Score = math.Inf(1)
	}
	for _, move := range moves {
		score := ab.child(game, move, depthLeft-1, ply+1, alpha, beta, maximizing)
		if !best.Found || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result[M]{Move: move, Score: score, Found: true}
		}
		if !ab.pruning {
			continue
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if beta <= alpha {
			// The other side will never let the game reach this node: prune the remaining moves.
			ab.stats.Prunes++
			break
		}
	}
	return best
}

// child plays move, searches the resulting position and always undoes the move, even if the
// search panics.
func (ab *Searcher[M]) child(game searchers.Game[M], move M, depthLeft, ply int, alpha, beta float64, maximizing bool) float64 {
	game.Play(move, maximizing)
	defer game.Undo(move)
	return ab.recursion(game, depthLeft, ply, alpha, beta, !maximizing).Score
}
