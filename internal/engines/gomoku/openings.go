package gomoku

import (
	"fmt"

	"github.com/janpfeifer/boardbots/internal/board"
)

// Status of an opening: which side is favored with best play.
type Status uint8

const (
	Balanced Status = iota
	BlackFavored
	WhiteFavored
)

var statusNames = [...]string{"balanced", "black-favored", "white-favored"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Family of openings, given by where the second move lies relative to the first (center) one, after
// the board is brought to its canonical orientation.
type Family uint8

const (
	// Orthogonal openings have the second stone at offset (0, 1).
	Orthogonal Family = iota

	// Diagonal openings have the second stone at offset (1, 1).
	Diagonal
)

func (f Family) String() string {
	if f == Orthogonal {
		return "orthogonal"
	}
	return "diagonal"
}

// canonicalSecond is the second move offset of each family.
var canonicalSecond = [2]board.Pos{Orthogonal: {0, 1}, Diagonal: {1, 1}}

// Opening is a named classical opening: a sequence of 3 stones with the first at the center.
type Opening struct {
	Name, Romanized string
	Status          Status
	Description     string

	// KeyPoints are suggested follow-ups, as offsets from the center in the canonical orientation.
	KeyPoints []board.Pos
}

type openingKey struct {
	family Family
	third  board.Pos // Offset of the third stone from the center.
}

// openings indexed by family and canonical offset of the third stone.
var openings = map[openingKey]*Opening{
	{Diagonal, board.P(0, 1)}: {Name: "寒星", Romanized: "Han Xing", Status: BlackFavored,
		Description: "Black wins. Few variations, black keeps control easily.",
		KeyPoints:   []board.Pos{{0, 2}, {-1, 2}, {-1, 0}}},
	{Diagonal, board.P(0, 2)}: {Name: "溪月", Romanized: "Xi Yue", Status: BlackFavored,
		Description: "Black wins. A common winning opening.",
		KeyPoints:   []board.Pos{{0, 1}, {-1, 1}, {-1, 0}}},
	{Diagonal, board.P(-1, 1)}: {Name: "疏星", Romanized: "Shu Xing", Status: Balanced,
		Description: "Balanced position."},
	{Diagonal, board.P(-1, 2)}: {Name: "花月", Romanized: "Hua Yue", Status: BlackFavored,
		Description: "Black wins. The strongest opening.",
		KeyPoints:   []board.Pos{{1, -1}, {-1, 1}, {-2, 2}, {0, 1}}},
	{Diagonal, board.P(-2, 2)}: {Name: "残月", Romanized: "Can Yue", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(-2, 1)}: {Name: "雨月", Romanized: "Yu Yue", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(-2, 0)}: {Name: "金星", Romanized: "Jin Xing", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(-2, -1)}: {Name: "松月", Romanized: "Song Yue", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(-1, -1)}: {Name: "丘月", Romanized: "Qiu Yue", Status: Balanced, Description: "Balanced position."},
	{Diagonal, board.P(-1, -2)}: {Name: "新月", Romanized: "Xin Yue", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(0, -2)}: {Name: "瑞星", Romanized: "Rui Xing", Status: Balanced, Description: "Balanced position."},
	{Diagonal, board.P(1, -2)}: {Name: "山月", Romanized: "Shan Yue", Status: BlackFavored, Description: "Black wins."},
	{Diagonal, board.P(1, -1)}: {Name: "游星", Romanized: "You Xing", Status: WhiteFavored,
		Description: "White wins, black loses with best play."},

	{Orthogonal, board.P(0, 1)}: {Name: "长星", Romanized: "Chang Xing", Status: WhiteFavored,
		Description: "Large advantage for white."},
	{Orthogonal, board.P(0, 2)}: {Name: "峡月", Romanized: "Xia Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(1, 2)}: {Name: "恒星", Romanized: "Heng Xing", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(1, 1)}: {Name: "水月", Romanized: "Shui Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(2, 1)}: {Name: "流星", Romanized: "Liu Xing", Status: WhiteFavored, Description: "White wins."},
	{Orthogonal, board.P(2, 0)}: {Name: "云月", Romanized: "Yun Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(2, -1)}: {Name: "浦月", Romanized: "Pu Yue", Status: BlackFavored,
		Description: "Black wins. With Hua Yue, one of the two strongest openings.",
		KeyPoints:   []board.Pos{{1, 1}, {0, 1}, {1, 0}}},
	{Orthogonal, board.P(1, -1)}: {Name: "岚月", Romanized: "Lan Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(1, -2)}: {Name: "银月", Romanized: "Yin Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(0, -2)}: {Name: "明星", Romanized: "Ming Xing", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(-1, -2)}: {Name: "斜月", Romanized: "Xie Yue", Status: Balanced, Description: "Balanced."},
	{Orthogonal, board.P(-1, -1)}: {Name: "名月", Romanized: "Ming Yue", Status: BlackFavored, Description: "Black wins."},
	{Orthogonal, board.P(-1, 1)}: {Name: "慧星", Romanized: "Hui Xing", Status: WhiteFavored, Description: "White wins."},
}

// NumOpenings returns the number of openings known by the classifier.
func NumOpenings() int {
	return len(openings)
}

// Symmetry is one of the 8 symmetries of the square, applied to offsets from the center.
// Symmetry 0 is the identity.
type Symmetry uint8

// NumSymmetries of the square: identity, reflections and rotations.
const NumSymmetries = 8

// Apply the symmetry to the offset d.
func (s Symmetry) Apply(d board.Pos) board.Pos {
	x, y := d[0], d[1]
	switch s {
	case 1:
		return board.Pos{-x, y}
	case 2:
		return board.Pos{x, -y}
	case 3:
		return board.Pos{-x, -y}
	case 4:
		return board.Pos{y, x}
	case 5:
		return board.Pos{-y, x}
	case 6:
		return board.Pos{y, -x}
	case 7:
		return board.Pos{-y, -x}
	}
	return d
}

// Invert maps an offset in the canonical orientation back to the board orientation:
// s.Invert(s.Apply(d)) == d.
func (s Symmetry) Invert(d board.Pos) board.Pos {
	u, v := d[0], d[1]
	switch s {
	case 5:
		return board.Pos{v, -u}
	case 6:
		return board.Pos{-v, u}
	}
	// All the others are their own inverse.
	return s.Apply(d)
}

// OpeningMatch is the result of ClassifyOpening.
type OpeningMatch struct {
	*Opening
	Family   Family
	Symmetry Symmetry
}

// KeyPointsOnBoard returns the opening's key points mapped to the board orientation of the game
// where it was matched.
func (m OpeningMatch) KeyPointsOnBoard() []board.Pos {
	points := make([]board.Pos, 0, len(m.KeyPoints))
	for _, kp := range m.KeyPoints {
		if pos := center.Add(m.Symmetry.Invert(kp)); inGrid(pos) {
			points = append(points, pos)
		}
	}
	return points
}

// String implements fmt.Stringer.
func (m OpeningMatch) String() string {
	return fmt.Sprintf("%s (%s), %s opening, %s: %s", m.Romanized, m.Name, m.Family, m.Status, m.Description)
}

// ClassifyOpening matches the first 3 moves of history against the known openings. It requires the
// first move at the center.
//
// Each symmetry is tried in order, and the first one that brings the second move to a canonical
// position with a known third move is returned.
func ClassifyOpening(history []board.Pos) (match OpeningMatch, found bool) {
	if len(history) < 3 || history[0] != center {
		return
	}
	second := history[1].Sub(center)
	third := history[2].Sub(center)
	for s := range Symmetry(NumSymmetries) {
		transformed := s.Apply(second)
		for family, canonical := range canonicalSecond {
			if transformed != canonical {
				continue
			}
			key := openingKey{family: Family(family), third: s.Apply(third)}
			if opening, ok := openings[key]; ok {
				return OpeningMatch{Opening: opening, Family: key.family, Symmetry: s}, true
			}
		}
	}
	return
}
