package main

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/engines"
	"github.com/janpfeifer/boardbots/internal/engines/hex"
	"github.com/janpfeifer/boardbots/internal/ui/cli"
	"github.com/janpfeifer/boardbots/internal/ui/spinning"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// playInteractive runs one match on the terminal. ais holds the engine for PlayerA and PlayerB, or
// nil for the players typing their moves. rules is used to create the board and detect the end of
// the game, it need not be one of the players.
func playInteractive(ctx context.Context, ui *cli.UI, rules engines.Engine, ais [2]engines.Engine, delay time.Duration) error {
	hexagonal := rules.Name() == hex.Name
	b := rules.NewBoard()
	var history []board.Pos
	current := board.PlayerA
	ui.PrintBoard(b, hexagonal, 0)

	for {
		ai := ais[current-board.PlayerA]
		var move board.Pos
		if ai == nil {
			var err error
			move, err = ui.ReadMove(b, current, hexagonal)
			if err != nil {
				return errors.WithMessagef(err, "reading move of %s", current)
			}
		} else {
			result, err := spinning.Think(ctx, delay, func() engines.Result {
				return ai.ChooseMove(b, history, current)
			})
			if err != nil {
				return err
			}
			if *flagTrace {
				ui.PrintTrace(result.Trace)
			}
			if !result.Found {
				// No candidates left: the board is full.
				ui.PrintOutcome(board.Outcome{Result: board.Draw})
				return nil
			}
			move = result.Move
			klog.V(1).Infof("%s (%s) plays %s, score=%g", current, ai.Name(), move, result.Score)
		}
		if err := b.Play(move, current); err != nil {
			return err
		}
		history = append(history, move)

		outcome := rules.DetectTerminal(b, history)
		ui.PrintBoard(b, hexagonal, len(history), append([]board.Pos{move}, outcome.Line...)...)
		if outcome.IsTerminal() {
			ui.PrintOutcome(outcome)
			return nil
		}
		if b.IsFull() {
			ui.PrintOutcome(board.Outcome{Result: board.Draw})
			return nil
		}
		current = current.Opponent()
	}
}

// MatchesSummary of a batch of matches between two engines.
type MatchesSummary struct {
	Names               [2]string
	Wins                [2]int
	Draws, Moves, Total int
}

// String implements fmt.Stringer.
func (s *MatchesSummary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d matches, %.1f moves on average\n", s.Total, float64(s.Moves)/float64(max(s.Total, 1)))
	for ii := range 2 {
		fmt.Fprintf(&sb, "  engine #%d (%s): %d wins\n", ii+1, s.Names[ii], s.Wins[ii])
	}
	fmt.Fprintf(&sb, "  draws: %d", s.Draws)
	return sb.String()
}

// playMatches plays numMatches between the two engines, parallelism of them at a time. The engines
// alternate who plays first. names are only used for the summary.
func playMatches(ctx context.Context, players [2]engines.Engine, names [2]string, numMatches, parallelism int) (
	*MatchesSummary, error) {
	matches := make([]*engines.Match, numMatches)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))
	var done atomic.Int32
	for matchIdx := range numMatches {
		g.Go(func() error {
			ordered := players
			if matchIdx%2 == 1 {
				ordered[0], ordered[1] = players[1], players[0]
			}
			match, err := engines.PlayMatch(gCtx, ordered)
			if err != nil {
				return errors.WithMessagef(err, "match #%d", matchIdx)
			}
			matches[matchIdx] = match
			if klog.V(1).Enabled() {
				klog.Infof("Match #%d finished (%d/%d): %s in %d moves",
					matchIdx, done.Add(1), numMatches, match.Outcome, len(match.History))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &MatchesSummary{Names: names, Total: numMatches}
	for matchIdx, match := range matches {
		summary.Moves += len(match.History)
		if match.Outcome.Result != board.Win {
			summary.Draws++
			continue
		}
		// PlayerA is the engine that moved first in the match.
		engineIdx := int(match.Outcome.Winner - board.PlayerA)
		if matchIdx%2 == 1 {
			engineIdx = 1 - engineIdx
		}
		summary.Wins[engineIdx]++
	}
	return summary, nil
}
