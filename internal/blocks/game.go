package blocks

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// SpawnX is the column where new pieces appear, at the top row.
	SpawnX = Cols/2 - 1

	// LineScore is multiplied by the square of the number of lines cleared by one piece.
	LineScore = 100
)

// Game is a simulation of the falling-block game where the advisor places every piece.
// The sequence of pieces is given by the seed, so games are reproducible.
type Game struct {
	advisor       *Advisor
	rng           *rand.Rand
	stack         Stack
	current, next Kind

	score, lines, pieces int
	over                 bool
}

// NewGame creates a game with an empty stack.
func NewGame(advisor *Advisor, seed int64) *Game {
	g := &Game{advisor: advisor, rng: rand.New(rand.NewSource(seed))}
	g.current = g.randomKind()
	g.next = g.randomKind()
	return g
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(NumKinds)))
}

// Stack returns a copy of the current stack.
func (g *Game) Stack() Stack { return g.stack }

// Current is the kind of the piece about to be placed, and Next the one after it.
func (g *Game) Current() Kind { return g.current }

// Next is the kind of the piece after Current.
func (g *Game) Next() Kind { return g.next }

// Score so far: LineScore times the square of the lines cleared at once, summed over all pieces.
func (g *Game) Score() int { return g.score }

// Lines cleared so far.
func (g *Game) Lines() int { return g.lines }

// Pieces placed so far.
func (g *Game) Pieces() int { return g.pieces }

// IsOver returns whether the stack topped out.
func (g *Game) IsOver() bool { return g.over }

// Step places the current piece where the advisor recommends and clears complete lines. It returns
// false if the game is over: either the new piece collides at its spawning position, or the advisor
// can't find a valid placement. A piece placed partially above the top is placed, and ends the game.
func (g *Game) Step() (placement Placement, ok bool) {
	if g.over {
		return
	}
	shape := g.current.Shape()
	if g.stack.Collides(shape, SpawnX, 0) {
		g.over = true
		return
	}
	placement, ok = g.advisor.Advise(&g.stack, shape)
	if !ok {
		g.over = true
		return
	}
	g.stack = g.stack.Place(placement.Shape, placement.X, placement.Y)
	cleared := g.stack.ClearLines()
	g.lines += cleared
	g.score += LineScore * cleared * cleared
	g.pieces++
	g.current, g.next = g.next, g.randomKind()
	if placement.Y < 0 {
		// Topped out: part of the piece rests above the stack.
		g.over = true
	}
	return
}

// Run steps until the game is over, maxPieces pieces were placed (if maxPieces > 0), or the context
// is cancelled. onStep, if not nil, is called after each piece is placed.
func (g *Game) Run(ctx context.Context, maxPieces int, onStep func(p Placement)) error {
	for maxPieces <= 0 || g.pieces < maxPieces {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "blocks game interrupted after %d pieces", g.pieces)
		}
		placement, ok := g.Step()
		if !ok {
			break
		}
		if onStep != nil {
			onStep(placement)
		}
	}
	klog.V(1).Infof("blocks: %d pieces, %d lines, score %d, over=%v", g.pieces, g.lines, g.score, g.over)
	return nil
}
