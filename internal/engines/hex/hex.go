// Package hex implements an opponent for the connection game Hex on a rhombus board with axial
// coordinates (q, r).
//
// board.PlayerA moves first and connects the left edge (q=0) to the right edge (q=size-1);
// board.PlayerB connects the top edge (r=0) to the bottom edge (r=size-1).
//
// The engine uses a fixed-depth minimax with alpha-beta pruning, scoring positions by the shortest
// paths each side still needs to connect its edges.
package hex

import (
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/engines"
	"github.com/janpfeifer/boardbots/internal/parameters"
	"github.com/janpfeifer/boardbots/internal/searchers/alphabeta"
	"github.com/pkg/errors"
)

// Name under which the engine is registered.
const Name = "hex"

const (
	// DefaultSize of the board side.
	DefaultSize = 11

	// DefaultDepth of the search, in plies.
	DefaultDepth = 2

	// DefaultBeam is the number of candidates kept, nearest to the center first, at nodes with at
	// least 2 plies left to search.
	DefaultBeam = 25

	// DefaultDefenseFirst and DefaultDefenseSecond weight the opponent's progress when the engine plays
	// first (PlayerA) or second (PlayerB). The second player is at a disadvantage and must value
	// blocking more.
	DefaultDefenseFirst  = float32(1.1)
	DefaultDefenseSecond = float32(1.8)
)

func init() {
	engines.Register(Name, NewFromParams)
}

// Engine for Hex. It holds only configuration, so it can be shared.
type Engine struct {
	size, depth, beam int
	defense           [3]float32 // Indexed by board.Occupant.
}

var _ engines.Engine = (*Engine)(nil)

// New returns a Hex engine with the default configuration. See Engine.With... methods to change it.
func New() *Engine {
	e := &Engine{size: DefaultSize, depth: DefaultDepth, beam: DefaultBeam}
	e.defense[board.PlayerA] = DefaultDefenseFirst
	e.defense[board.PlayerB] = DefaultDefenseSecond
	return e
}

// NewFromParams creates an engine from configuration parameters:
//
//   - size (int): board side, default 11.
//   - depth (int): search depth in plies, default 2.
//   - beam (int): candidates kept at nodes with 2 or more plies left, default 25.
//   - defense_first, defense_second (float): weight of the opponent's progress when playing first or
//     second, default 1.1 and 1.8.
func NewFromParams(params parameters.Params) (engines.Engine, error) {
	size, err := parameters.PopParamOr(params, "size", DefaultSize)
	if err != nil {
		return nil, err
	}
	if size < 2 || size > 25 {
		return nil, errors.Errorf("hex board size must be between 2 and 25, got %d", size)
	}
	depth, err := parameters.PopParamOr(params, "depth", DefaultDepth)
	if err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, errors.Errorf("hex search depth must be >= 1, got %d", depth)
	}
	beam, err := parameters.PopParamOr(params, "beam", DefaultBeam)
	if err != nil {
		return nil, err
	}
	e := New().WithSize(size).WithDepth(depth).WithBeam(beam)
	if e.defense[board.PlayerA], err = parameters.PopParamOr(params, "defense_first", e.defense[board.PlayerA]); err != nil {
		return nil, err
	}
	if e.defense[board.PlayerB], err = parameters.PopParamOr(params, "defense_second", e.defense[board.PlayerB]); err != nil {
		return nil, err
	}
	return e, nil
}

// WithSize sets the board side.
func (e *Engine) WithSize(size int) *Engine {
	e.size = size
	return e
}

// WithDepth sets the search depth in plies.
func (e *Engine) WithDepth(depth int) *Engine {
	e.depth = depth
	return e
}

// WithBeam sets how many candidates are kept at nodes with 2 or more plies left. 0 keeps all.
func (e *Engine) WithBeam(beam int) *Engine {
	e.beam = beam
	return e
}

// Name implements engines.Engine.
func (e *Engine) Name() string { return Name }

// NewBoard implements engines.Engine.
func (e *Engine) NewBoard() *board.Board {
	return board.New(e.size)
}

// DetectTerminal implements engines.Engine. Hex has no draws, and history is not used.
func (e *Engine) DetectTerminal(b *board.Board, _ []board.Pos) board.Outcome {
	for _, player := range []board.Occupant{board.PlayerA, board.PlayerB} {
		if ConnectsEdges(b, player) {
			return board.Outcome{Result: board.Win, Winner: player}
		}
	}
	return board.Outcome{}
}

// Evaluate implements engines.Engine.
func (e *Engine) Evaluate(b *board.Board, perspective board.Occupant) float64 {
	return float64(e.evaluate(b, perspective))
}

// ChooseMove implements engines.Engine. The history is not used, and no trace is returned.
//
// An empty board is always answered with the center. As second player, if the opponent opened in
// the center, the engine answers with the adjacent cell blocking the short diagonal. Otherwise it
// searches.
func (e *Engine) ChooseMove(b *board.Board, _ []board.Pos, player board.Occupant) engines.Result {
	center := b.Center()
	if b.IsEmpty() {
		return engines.Result{Move: center, Found: true}
	}
	if b.NumOccupied() == 1 && player == board.PlayerB && b.At(center) == player.Opponent() {
		if reply := center.Add(board.Pos{1, -1}); b.InBounds(reply) {
			return engines.Result{Move: reply, Found: true, Score: e.Evaluate(b, player)}
		}
	}

	game := &searchGame{engine: e, board: b.Clone(), player: player}
	searcher := alphabeta.New[board.Pos]().WithMaxDepth(e.depth).WithName(Name)
	result := searcher.Search(game)
	if result.Found {
		return engines.Result{Move: result.Move, Found: true, Score: result.Score}
	}

	// The position is already decided (or the search had no moves): play the most central candidate.
	candidates := e.Candidates(b)
	if len(candidates) == 0 {
		return engines.Result{Score: result.Score}
	}
	return engines.Result{Move: candidates[0], Found: true, Score: result.Score}
}
