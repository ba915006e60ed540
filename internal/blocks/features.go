package blocks

import (
	"fmt"

	"github.com/janpfeifer/boardbots/internal/generics"
	"github.com/janpfeifer/boardbots/internal/parameters"
	"github.com/samber/lo"
)

// Features of a stack used to score placements.
type Features struct {
	// AggregateHeight is the sum of the column heights.
	AggregateHeight int

	// CompleteLines is the number of filled rows.
	CompleteLines int

	// Holes are empty cells with a filled cell somewhere above them in the same column.
	Holes int

	// Bumpiness is the sum of the absolute height differences of adjacent columns.
	Bumpiness int
}

// String implements fmt.Stringer.
func (f Features) String() string {
	return fmt.Sprintf("height=%d, lines=%d, holes=%d, bumpiness=%d",
		f.AggregateHeight, f.CompleteLines, f.Holes, f.Bumpiness)
}

// Heights returns the height of each column: the number of rows from its highest filled cell to the
// bottom, or 0 for empty columns.
func (s *Stack) Heights() []int {
	heights := make([]int, Cols)
	for x := range Cols {
		for y := range Rows {
			if s[y][x] {
				heights[x] = Rows - y
				break
			}
		}
	}
	return heights
}

// Holes returns the number of empty cells covered by a filled cell in the same column.
func (s *Stack) Holes() (holes int) {
	for x := range Cols {
		covered := false
		for y := range Rows {
			if s[y][x] {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return
}

// Features computes all the features of the stack.
func (s *Stack) Features() Features {
	heights := s.Heights()
	return Features{
		AggregateHeight: lo.Sum(heights),
		CompleteLines:   s.CompleteLines(),
		Holes:           s.Holes(),
		Bumpiness: lo.Sum(lo.Map(heights[1:], func(h int, ii int) int {
			return generics.Abs(h - heights[ii])
		})),
	}
}

// Weights of each feature in the score of a stack.
type Weights struct {
	Height, Lines, Holes, Bumpiness float64
}

// DefaultWeights penalize height, holes and bumpiness, and reward complete lines.
var DefaultWeights = Weights{Height: -0.51, Lines: 0.76, Holes: -0.36, Bumpiness: -0.18}

// Score is the weighted sum of the features.
func (w Weights) Score(f Features) float64 {
	return w.Height*float64(f.AggregateHeight) +
		w.Lines*float64(f.CompleteLines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// ParseWeights starts from DefaultWeights and overrides the weights given in config, a comma-separated
// list of "height", "lines", "holes" and "bumpiness" values. E.g.: "holes=-0.5,lines=1".
func ParseWeights(config string) (w Weights, err error) {
	w = DefaultWeights
	params := parameters.NewFromConfigString(config)
	for _, field := range []struct {
		key   string
		value *float64
	}{{"height", &w.Height}, {"lines", &w.Lines}, {"holes", &w.Holes}, {"bumpiness", &w.Bumpiness}} {
		if *field.value, err = parameters.PopParamOr(params, field.key, *field.value); err != nil {
			return
		}
	}
	err = parameters.CheckAllUsed(params, "block advisor weights")
	return
}
