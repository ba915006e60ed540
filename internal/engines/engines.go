// Package engines defines the Engine capability implemented by each board-game opponent, and a
// registry to create engines from configuration strings.
//
// Engines are synchronous and pure: the same board, history and player always produce the same
// Result, and the caller's board is left unchanged. Concrete engines register themselves on init,
// include them with:
//
//	import _ "github.com/janpfeifer/boardbots/internal/engines/all"
package engines

import (
	"strings"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
	"github.com/janpfeifer/boardbots/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Result of Engine.ChooseMove.
type Result struct {
	// Move chosen. Only valid if Found is true: Found is false if there were no legal candidates.
	Move  board.Pos
	Found bool

	// Score of the move from the engine's perspective, as estimated by its search. Moves decided
	// without search (openings, forced moves) report the engine's fixed score for them.
	Score float64

	// Trace is an ordered human-readable explanation of the decision. Only some engines provide it.
	Trace []string
}

// Engine is a board-game opponent. Each game provides one implementation, selected once when the
// game is set up.
type Engine interface {
	// Name of the game/engine, as registered.
	Name() string

	// NewBoard returns an empty board of the size the engine plays.
	NewBoard() *board.Board

	// DetectTerminal returns whether the game is over. history is used by engines that only check
	// around the last move, it may be nil otherwise.
	DetectTerminal(b *board.Board, history []board.Pos) board.Outcome

	// Candidates returns the legal moves the engine considers, in exploration order.
	Candidates(b *board.Board) []board.Pos

	// Evaluate returns a static score of the board: more positive favors perspective.
	Evaluate(b *board.Board, perspective board.Occupant) float64

	// ChooseMove returns the move the engine plays as player. The board is not changed.
	ChooseMove(b *board.Board, history []board.Pos, player board.Occupant) Result
}

// Builder creates an engine from its parameters. It should pop (parameters.PopParamOr) every
// parameter it uses: parameters left over are reported as errors.
type Builder func(params parameters.Params) (Engine, error)

var (
	// Registered engine builders, by name.
	registry = make(map[string]Builder)
)

// Register an engine builder under the given name. It is meant to be called from init functions.
func Register(name string, builder Builder) {
	if _, found := registry[name]; found {
		klog.Warningf("engine %q registered more than once, the last registration wins", name)
	}
	registry[name] = builder
}

// Names returns the sorted names of the registered engines.
func Names() (names []string) {
	for name := range generics.SortedKeys(registry) {
		names = append(names, name)
	}
	return
}

// New creates an engine given the configuration string.
//
// Args:
//
//	config: the engine name optionally followed by a colon (":") and a comma-separated list of parameters
//		with optional values associated. E.g.: "hex:depth=2,beam=25" or "tictactoe".
func New(config string) (Engine, error) {
	name, paramsConfig, _ := strings.Cut(config, ":")
	name = strings.TrimSpace(name)
	builder, found := registry[name]
	if !found {
		if len(registry) == 0 {
			return nil, errors.Errorf("unknown engine %q: no engines registered, "+
				"perhaps you need to import _ \"github.com/janpfeifer/boardbots/internal/engines/all\"", name)
		}
		return nil, errors.Errorf("unknown engine %q, valid engines are %q", name, Names())
	}
	params := parameters.NewFromConfigString(paramsConfig)
	engine, err := builder(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create engine %q", name)
	}
	if err := parameters.CheckAllUsed(params, "engine "+name); err != nil {
		return nil, err
	}
	klog.V(1).Infof("Created engine %q from config %q", name, config)
	return engine, nil
}
