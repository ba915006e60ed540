package engines

import (
	"context"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Match holds the record of a match played by PlayMatch.
type Match struct {
	Board   *board.Board
	History []board.Pos
	Outcome board.Outcome

	// Traces of each move, if the engine provided them.
	Traces [][]string
}

// PlayMatch plays players[0] as board.PlayerA (who moves first) against players[1] as board.PlayerB,
// starting from an empty board, until the game is over or there are no candidate moves left,
// which is scored as a draw.
//
// The context is checked between moves.
func PlayMatch(ctx context.Context, players [2]Engine) (*Match, error) {
	if players[0].Name() != players[1].Name() {
		return nil, errors.Errorf("engines %q and %q play different games", players[0].Name(), players[1].Name())
	}
	m := &Match{Board: players[0].NewBoard()}
	current := board.PlayerA
	for ply := 0; ; ply++ {
		if err := ctx.Err(); err != nil {
			return m, errors.Wrapf(err, "match interrupted at move #%d", ply+1)
		}
		engine := players[ply%2]
		result := engine.ChooseMove(m.Board, m.History, current)
		if !result.Found {
			m.Outcome = board.Outcome{Result: board.Draw}
			return m, nil
		}
		if err := m.Board.Play(result.Move, current); err != nil {
			return m, errors.WithMessagef(err, "engine %q (%s) chose an invalid move", engine.Name(), current)
		}
		m.History = append(m.History, result.Move)
		m.Traces = append(m.Traces, result.Trace)
		if klog.V(3).Enabled() {
			klog.Infof("Move #%d: %s plays %s (score=%g)", ply+1, current, result.Move, result.Score)
		}
		m.Outcome = engine.DetectTerminal(m.Board, m.History)
		if m.Outcome.IsTerminal() {
			return m, nil
		}
		current = current.Opponent()
	}
}
