package blocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapes(t *testing.T) {
	tShape := T.Shape()
	assert.Equal(t, ".#.\n###", tShape.String())
	assert.Equal(t, "#.\n##\n#.", tShape.Rotate().String())
	rotations := tShape.Rotations()
	assert.Equal(t, "###\n.#.", rotations[2].String())
	assert.True(t, rotations[3].Rotate().Equal(tShape))

	iShape := I.Shape()
	assert.Equal(t, 4, iShape.Width())
	assert.Equal(t, 1, iShape.Rotate().Width())
	assert.Equal(t, 4, iShape.Rotate().Height())
	assert.True(t, O.Shape().Rotate().Equal(O.Shape()))

	// Shape returns a copy.
	iShape[0][0] = false
	assert.Equal(t, "####", I.Shape().String())
	assert.Equal(t, "Z", Z.String())
}

func TestCollisionAndLanding(t *testing.T) {
	s := &Stack{}
	iShape := I.Shape()
	assert.True(t, s.Collides(iShape, -1, 0))
	assert.True(t, s.Collides(iShape, 7, 0))
	assert.False(t, s.Collides(iShape, 6, 0))
	assert.False(t, s.Collides(iShape, 0, -5), "above the top only sides collide")
	assert.True(t, s.Collides(iShape, 0, Rows))

	y, valid := s.LandingRow(iShape, 0)
	assert.True(t, valid)
	assert.Equal(t, Rows-1, y)
	y, _ = s.LandingRow(iShape.Rotate(), 3)
	assert.Equal(t, Rows-4, y)
	_, valid = s.LandingRow(iShape, 8)
	assert.False(t, valid)

	// Overhang: the piece rests on the first row it meets.
	s = ParseStack(
		"###.......",
		"..........")
	y, valid = s.LandingRow(O.Shape(), 0)
	require.True(t, valid)
	assert.Equal(t, Rows-4, y)

	// Resting partially above the top is valid, as long as some block lands inside the stack.
	s = &Stack{}
	for y := 2; y < Rows; y++ {
		s[y][0] = true
	}
	vertical := iShape.Rotate()
	y, valid = s.LandingRow(vertical, 0)
	assert.True(t, valid)
	assert.Equal(t, -2, y)
	placed := s.Place(vertical, 0, y)
	assert.True(t, placed[0][0] && placed[1][0])

	// A full column can't take any more.
	for y := range Rows {
		s[y][0] = true
	}
	_, valid = s.LandingRow(O.Shape(), 0)
	assert.False(t, valid)
}

func TestFeatures(t *testing.T) {
	s := ParseStack(
		"#.........",
		"##.#......",
		"#.##......")
	assert.Equal(t, []int{3, 2, 1, 2, 0, 0, 0, 0, 0, 0}, s.Heights())
	assert.Equal(t, Features{AggregateHeight: 8, Holes: 1, Bumpiness: 5}, s.Features())
	assert.InDelta(t, -0.51*8-0.36-0.18*5, DefaultWeights.Score(s.Features()), 1e-9)
}

func TestClearLines(t *testing.T) {
	s := ParseStack(
		"#.........",
		"##########",
		".#........",
		"##########")
	assert.Equal(t, 2, s.CompleteLines())
	assert.Equal(t, 2, s.ClearLines())
	assert.Equal(t, *ParseStack("#.........", ".#........"), *s)
	assert.Equal(t, 0, s.ClearLines())

	s = ParseStack("##########")
	s.ClearLines()
	assert.True(t, s.IsEmpty())
}

func TestAdvise(t *testing.T) {
	advisor := NewAdvisor(DefaultWeights)

	// Empty stack: horizontal, at the left, first of the ties.
	best, found := advisor.Advise(&Stack{}, I.Shape())
	require.True(t, found)
	assert.Equal(t, 0, best.X)
	assert.Equal(t, Rows-1, best.Y)
	assert.Equal(t, 0, best.Rotation)

	// Completing a line.
	s := ParseStack("#########.")
	before := *s
	best, found = advisor.Advise(s, I.Shape())
	require.True(t, found)
	assert.Equal(t, 9, best.X)
	assert.Equal(t, Rows-4, best.Y)
	assert.Equal(t, 1, best.Rotation)
	assert.Equal(t, 1, best.Features.CompleteLines)
	assert.Equal(t, before, *s, "Advise must not change the stack")

	// Every enumerated placement is valid.
	placements := advisor.Placements(s, T.Shape())
	assert.Len(t, placements, 8+9+8+9)
	for _, p := range placements {
		assert.False(t, s.Collides(p.Shape, p.X, p.Y))
	}

	// No room.
	full := ParseStack(make([]string, Rows)...)
	for y := range Rows {
		for x := range Cols - 1 {
			full[y][x] = true
		}
	}
	_, found = advisor.Advise(full, O.Shape())
	assert.False(t, found)
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights("holes=-1,lines=2")
	require.NoError(t, err)
	assert.Equal(t, Weights{Height: -0.51, Lines: 2, Holes: -1, Bumpiness: -0.18}, w)

	w, err = ParseWeights("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights, w)

	_, err = ParseWeights("holes=many")
	assert.Error(t, err)
	_, err = ParseWeights("wells=1")
	assert.ErrorContains(t, err, "wells")
}

func TestGame(t *testing.T) {
	advisor := NewAdvisor(DefaultWeights)
	g := NewGame(advisor, 42)
	for range 100 {
		before := g.Stack()
		kind := g.Current()
		p, ok := g.Step()
		if !ok {
			break
		}
		// The placement applied to the stack doesn't collide, and is where the piece lands.
		assert.False(t, before.Collides(p.Shape, p.X, p.Y))
		y, valid := before.LandingRow(p.Shape, p.X)
		assert.True(t, valid)
		assert.Equal(t, y, p.Y)
		assert.Contains(t, advisor.Placements(&before, kind.Shape()), p)
	}
	assert.Greater(t, g.Pieces(), 0)
	assert.LessOrEqual(t, LineScore*g.Lines(), g.Score())

	// Same seed, same game.
	g1, g2 := NewGame(advisor, 7), NewGame(advisor, 7)
	require.NoError(t, g1.Run(context.Background(), 50, nil))
	var steps int
	require.NoError(t, g2.Run(context.Background(), 50, func(Placement) { steps++ }))
	assert.Equal(t, g1.Score(), g2.Score())
	assert.Equal(t, g1.Stack(), g2.Stack())
	assert.Equal(t, g2.Pieces(), steps)
	assert.LessOrEqual(t, steps, 50)

	// An advisor rewarding height tops out quickly; a piece resting above the top ends the game.
	climber := NewAdvisor(Weights{Height: 1})
	for seed := range int64(5) {
		g := NewGame(climber, seed)
		var last Placement
		require.NoError(t, g.Run(context.Background(), 1000, func(p Placement) {
			assert.Falsef(t, last.Y < 0, "seed %d: game went on after a piece topped out", seed)
			last = p
			if p.Y < 0 {
				assert.True(t, g.IsOver())
			}
		}))
		assert.Truef(t, g.IsOver(), "seed %d: game should have topped out", seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewGame(advisor, 1).Run(ctx, 0, nil), context.Canceled)
}
