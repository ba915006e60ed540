package gomoku

// Pattern weights. A line scores only its highest category.
const (
	FiveWeight       = 100_000_000
	OpenFourWeight   = 1_000_000
	ClosedFourWeight = 10_000
	OpenThreeWeight  = 10_000
	OpenTwoWeight    = 500
)

// DefaultOpponentWeight multiplies the opponent's pattern score before it is subtracted.
const DefaultOpponentWeight = 1.5

// category of line patterns, with its weight. Shapes are written with '0' for an empty cell, '1' for
// a stone of the scored side and '2' for a blocking cell (opponent stone or border).
//
// A line matches the category if it contains any of the shapes, or all of them if matchAll is set.
type category struct {
	name     string
	weight   float64
	shapes   [][]int8
	matchAll bool
}

var categories = []category{
	newCategory("five", FiveWeight, "11111"),
	newCategory("open four", OpenFourWeight, "011110"),
	newCategory("closed four", ClosedFourWeight, "011112", "211110", "10111", "11011", "11101"),
	newCategory("open three", OpenThreeWeight, "01110", "010110", "011010"),
	newCategory("open two", OpenTwoWeight, "01100", "00110").withMatchAll(),
}

func newCategory(name string, weight float64, shapes ...string) category {
	c := category{name: name, weight: weight}
	for _, shape := range shapes {
		codes := make([]int8, len(shape))
		for ii, ch := range shape {
			codes[ii] = int8(ch - '0')
		}
		c.shapes = append(c.shapes, codes)
	}
	return c
}

func (c category) withMatchAll() category {
	c.matchAll = true
	return c
}

// matches returns whether line holds the category's shapes.
func (c category) matches(line []int8) bool {
	for _, shape := range c.shapes {
		if contains(line, shape) != c.matchAll {
			return !c.matchAll
		}
	}
	return c.matchAll
}

// contains returns whether shape appears in line, sliding a window of the shape's length over it.
func contains(line, shape []int8) bool {
outer:
	for start := 0; start+len(shape) <= len(line); start++ {
		for ii, code := range shape {
			if line[start+ii] != code {
				continue outer
			}
		}
		return true
	}
	return false
}

// scoreLine returns the weight of the first category (highest first) with a shape in line.
func scoreLine(line []int8) float64 {
	for _, c := range categories {
		if c.matches(line) {
			return c.weight
		}
	}
	return 0
}

// scoreFor sums scoreLine over every row, column and diagonal of length 5 or more, seen from the side
// with the given code: its stones become 1, empty cells 0, and everything else (including the border
// at both ends of the line) 2.
func (g *grid) scoreFor(code int8) (score float64) {
	line := make([]int8, 0, Size+2)
	for _, d := range lineDirections {
		for idx := range g {
			start := gridPos(idx)
			if inGrid(start.Sub(d)) {
				// Not the start of a line.
				continue
			}
			line = append(line[:0], opponent)
			hasStones := false
			for pos := start; inGrid(pos); pos = pos.Add(d) {
				switch g[index(pos)] {
				case code:
					line = append(line, own)
					hasStones = true
				case free:
					line = append(line, free)
				default:
					line = append(line, opponent)
				}
			}
			line = append(line, opponent)
			if len(line) < 5+2 || !hasStones {
				continue
			}
			score += scoreLine(line)
		}
	}
	return
}

// evaluate returns the score of the grid for own: own patterns minus the opponent's patterns
// multiplied by opponentWeight.
func (g *grid) evaluate(opponentWeight float64) float64 {
	return g.scoreFor(own) - opponentWeight*g.scoreFor(opponent)
}

// strategy returns a coarse label of what a search score means.
func strategy(score float64) string {
	switch {
	case score >= OpenFourWeight:
		return "open-four attack"
	case score >= OpenThreeWeight:
		return "open-three extension"
	case score >= OpenTwoWeight:
		return "open-two development"
	}
	return "balanced"
}
