// Package gomoku implements an opponent for five-in-a-row on a 15x15 board, where positions are
// (row, column).
//
// The engine first looks for forced moves (an immediate five, or blocking the opponent's), and
// otherwise runs a minimax with alpha-beta pruning over the cells near the stones, scoring the leaves
// by the patterns (open four, closed four, open three, ...) found along every line of the board.
//
// Besides the move, it returns a trace: an ordered human-readable explanation of the decision,
// including the name of the classical opening played, if any.
package gomoku

import (
	"fmt"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/engines"
	"github.com/janpfeifer/boardbots/internal/parameters"
	"github.com/janpfeifer/boardbots/internal/searchers/alphabeta"
	"github.com/pkg/errors"
)

// Name under which the engine is registered.
const Name = "gomoku"

const (
	// DefaultDepth is the number of plies searched below each candidate move of the engine.
	DefaultDepth = 3

	// DefaultRootWidth, DefaultWidth and DefaultLeafWidth are the number of candidates (closest to the
	// center first) searched at the root, in the middle of the tree and right above the leaves.
	DefaultRootWidth = 16
	DefaultWidth     = 12
	DefaultLeafWidth = 8

	// BlockScore is reported for a move that blocks the opponent's five.
	BlockScore = FiveWeight / 2
)

func init() {
	engines.Register(Name, NewFromParams)
}

// Engine for gomoku. It holds only configuration, so it can be shared.
type Engine struct {
	depth, rootWidth, width, leafWidth int
	opponentWeight                     float64
}

var _ engines.Engine = (*Engine)(nil)

// New returns a gomoku engine with the default configuration.
func New() *Engine {
	return &Engine{
		depth:          DefaultDepth,
		rootWidth:      DefaultRootWidth,
		width:          DefaultWidth,
		leafWidth:      DefaultLeafWidth,
		opponentWeight: DefaultOpponentWeight,
	}
}

// NewFromParams creates an engine from the parameters "depth", "root_width", "width", "leaf_width"
// and "opponent_weight".
func NewFromParams(params parameters.Params) (engines.Engine, error) {
	e := New()
	var err error
	for _, intParam := range []struct {
		key   string
		value *int
	}{{"depth", &e.depth}, {"root_width", &e.rootWidth}, {"width", &e.width}, {"leaf_width", &e.leafWidth}} {
		if *intParam.value, err = parameters.PopParamOr(params, intParam.key, *intParam.value); err != nil {
			return nil, err
		}
		if *intParam.value < 1 {
			return nil, errors.Errorf("gomoku parameter %q must be >= 1, got %d", intParam.key, *intParam.value)
		}
	}
	if e.opponentWeight, err = parameters.PopParamOr(params, "opponent_weight", e.opponentWeight); err != nil {
		return nil, err
	}
	return e, nil
}

// Name implements engines.Engine.
func (e *Engine) Name() string { return Name }

// NewBoard implements engines.Engine.
func (e *Engine) NewBoard() *board.Board { return board.New(Size) }

// DetectTerminal implements engines.Engine. If history is given only its last move is checked,
// otherwise every stone is. The winning line is returned in the outcome.
func (e *Engine) DetectTerminal(b *board.Board, history []board.Pos) board.Outcome {
	g := newGrid(b, board.PlayerA)
	var toCheck []board.Pos
	if len(history) > 0 {
		toCheck = history[len(history)-1:]
	} else {
		toCheck = b.OccupiedPositions()
	}
	for _, pos := range toCheck {
		if line, found := g.fiveAt(pos); found {
			return board.Outcome{Result: board.Win, Winner: b.At(pos), Line: line}
		}
	}
	if b.IsFull() {
		return board.Outcome{Result: board.Draw}
	}
	return board.Outcome{}
}

// Candidates implements engines.Engine: the center on an empty board, otherwise the empty cells within
// 2 rows and columns of a stone, closest to the center first.
func (e *Engine) Candidates(b *board.Board) []board.Pos {
	g := newGrid(b, board.PlayerA)
	if g.isEmpty() {
		return []board.Pos{center}
	}
	return g.candidates()
}

// Evaluate implements engines.Engine.
func (e *Engine) Evaluate(b *board.Board, perspective board.Occupant) float64 {
	return e.evaluate(newGrid(b, perspective))
}

func (e *Engine) evaluate(g *grid) float64 {
	return g.evaluate(e.opponentWeight)
}

// ChooseMove implements engines.Engine, and returns the trace of the decision.
func (e *Engine) ChooseMove(b *board.Board, history []board.Pos, player board.Occupant) engines.Result {
	var trace []string
	logf := func(format string, args ...any) {
		trace = append(trace, fmt.Sprintf(format, args...))
	}
	g := newGrid(b, player)
	logf("[init] board converted: %d stones in play", b.NumOccupied())

	nearby := g.nearbyCells()
	if pos, found := g.firstFive(nearby, own); found {
		logf("[tactics] win: %s completes five in a row", pos)
		logf("[decision] %s: win, immediate five", pos)
		return engines.Result{Move: pos, Found: true, Score: FiveWeight, Trace: trace}
	}
	if pos, found := g.firstFive(nearby, opponent); found {
		logf("[tactics] block: opponent completes five at %s", pos)
		logf("[decision] %s: block, highest priority", pos)
		return engines.Result{Move: pos, Found: true, Score: BlockScore, Trace: trace}
	}
	logf("[tactics] safe: no immediate win or loss")

	if g.isEmpty() {
		logf("[opening] empty board")
		logf("[decision] %s: center, opening book move", center)
		return engines.Result{Move: center, Found: true, Trace: trace}
	}
	if match, found := ClassifyOpening(history); found {
		logf("[opening] %s; key points: %v", match, match.KeyPointsOnBoard())
	}

	logf("[search] minimax with alpha-beta pruning, depth %d", e.depth)
	candidates := g.candidates()
	logf("[candidates] %d cells near the stones, searching the %d closest to the center",
		len(candidates), min(len(candidates), e.rootWidth))
	if len(candidates) == 0 {
		logf("[decision] no legal move")
		return engines.Result{Trace: trace}
	}

	game := &searchGame{engine: e, grid: g}
	searcher := alphabeta.New[board.Pos]().WithMaxDepth(e.depth + 1).WithName(Name)
	result := searcher.Search(game)
	stats := searcher.Stats()
	logf("[stats] %d nodes searched, %d pruned", stats.Nodes, stats.Prunes)
	move := result.Move
	if !result.Found {
		move = candidates[0]
	}
	logf("[decision] %s: %s (score %.0f)", move, strategy(result.Score), result.Score)
	return engines.Result{Move: move, Found: true, Score: result.Score, Trace: trace}
}
