// Package tictactoe implements a perfect tic-tac-toe player, using an exhaustive minimax.
//
// Positions are (row, column) on a 3x3 board, and board.PlayerA plays first.
package tictactoe

import (
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/engines"
	"github.com/janpfeifer/boardbots/internal/parameters"
	"github.com/janpfeifer/boardbots/internal/searchers"
	"github.com/janpfeifer/boardbots/internal/searchers/alphabeta"
)

// Name under which the engine is registered.
const Name = "tictactoe"

const (
	// Size of the board side.
	Size = 3

	// WinScore is the score of a win right after the engine's move. Each extra move before the win
	// costs one point, so faster wins and slower losses are preferred.
	WinScore = 10
)

var center = board.P(1, 1)

// lines are the 8 ways of making three in a row.
var lines = [8][3]board.Pos{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func init() {
	engines.Register(Name, NewFromParams)
}

// Engine for tic-tac-toe.
type Engine struct {
	pruning bool
}

var _ engines.Engine = (*Engine)(nil)

// New returns a tic-tac-toe engine doing a plain minimax. Use WithPruning to enable alpha-beta pruning,
// it picks the same moves.
func New() *Engine {
	return &Engine{}
}

// NewFromParams creates an engine. The only parameter is "pruning" (bool).
func NewFromParams(params parameters.Params) (engines.Engine, error) {
	e := New()
	var err error
	e.pruning, err = parameters.PopParamOr(params, "pruning", e.pruning)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// WithPruning enables or disables alpha-beta pruning.
func (e *Engine) WithPruning(pruning bool) *Engine {
	e.pruning = pruning
	return e
}

// Name implements engines.Engine.
func (e *Engine) Name() string { return Name }

// NewBoard implements engines.Engine.
func (e *Engine) NewBoard() *board.Board { return board.New(Size) }

// DetectTerminal implements engines.Engine. The history is not needed.
func (e *Engine) DetectTerminal(b *board.Board, _ []board.Pos) board.Outcome {
	return detectTerminal(b)
}

func detectTerminal(b *board.Board) board.Outcome {
	for _, line := range lines {
		if first := b.At(line[0]); first != board.Empty && b.At(line[1]) == first && b.At(line[2]) == first {
			return board.Outcome{Result: board.Win, Winner: first, Line: line[:]}
		}
	}
	if b.IsFull() {
		return board.Outcome{Result: board.Draw}
	}
	return board.Outcome{}
}

// Candidates implements engines.Engine: all empty cells, in row-major order.
func (e *Engine) Candidates(b *board.Board) []board.Pos {
	return b.EmptyPositions()
}

// Evaluate implements engines.Engine: only finished games have a value other than 0.
func (e *Engine) Evaluate(b *board.Board, perspective board.Occupant) float64 {
	outcome := detectTerminal(b)
	switch {
	case outcome.Result != board.Win:
		return 0
	case outcome.Winner == perspective:
		return WinScore
	default:
		return -WinScore
	}
}

// ChooseMove implements engines.Engine.
//
// The first move is always the center. The reply to it is the center if free, or a corner.
// Everything else is searched exhaustively.
func (e *Engine) ChooseMove(b *board.Board, _ []board.Pos, player board.Occupant) engines.Result {
	switch b.NumOccupied() {
	case 0:
		return engines.Result{Move: center, Found: true}
	case 1:
		if b.IsEmptyAt(center) {
			return engines.Result{Move: center, Found: true}
		}
		return engines.Result{Move: board.P(0, 0), Found: true}
	}

	game := &searchGame{board: b.Clone(), player: player}
	result := alphabeta.New[board.Pos]().
		WithMaxDepth(Size * Size).
		WithPruning(e.pruning).
		WithName(Name).
		Search(game)
	return engines.Result{Move: result.Move, Found: result.Found, Score: result.Score}
}

// searchGame explores a scratch board, scoring only finished games.
type searchGame struct {
	board  *board.Board
	player board.Occupant
}

var _ searchers.Game[board.Pos] = (*searchGame)(nil)

// Leaf scores finished games: ply is the number of moves since the engine's turn, so a win by the
// engine's own move (ply 1) is worth WinScore.
func (g *searchGame) Leaf(_, ply int) (float64, bool) {
	outcome := detectTerminal(g.board)
	depth := float64(max(ply-1, 0))
	switch outcome.Result {
	case board.Win:
		if outcome.Winner == g.player {
			return WinScore - depth, true
		}
		return depth - WinScore, true
	case board.Draw:
		return 0, true
	}
	return 0, false
}

func (g *searchGame) Moves(_ int, _ bool) []board.Pos {
	return g.board.EmptyPositions()
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
