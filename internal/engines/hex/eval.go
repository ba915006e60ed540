package hex

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
)

const (
	// WinScore for a connected side. Positions where a side is cut off score a bit less.
	WinScore = float32(1_000_000)

	// cutOffMargin separates "opponent cut off" from an actual win.
	cutOffMargin = 100

	// nearWinMargin: scores within this margin of ±WinScore are treated as decided by the search.
	nearWinMargin = 1000

	distanceExponent = 1.4
	distanceScale    = 1000
	scoreScale       = 100
	centralityBase   = 15
)

// evaluate scores the board from the perspective of player, combining both sides' shortest paths
// and a bonus for the player's central cells.
func (e *Engine) evaluate(b *board.Board, player board.Occupant) float32 {
	myDist := ShortestPath(b, player)
	oppDist := ShortestPath(b, player.Opponent())
	switch {
	case myDist == 0:
		return WinScore
	case oppDist == 0:
		return -WinScore
	case myDist >= Unreachable:
		return -WinScore + cutOffMargin
	case oppDist >= Unreachable:
		return WinScore - cutOffMargin
	}

	myScore := distanceScale / math32.Pow(float32(myDist), distanceExponent)
	oppScore := distanceScale / math32.Pow(float32(oppDist), distanceExponent)
	return (myScore-oppScore*e.defense[player])*scoreScale + float32(centrality(b, player))
}

// centrality sums, for each cell owned by player, centralityBase minus its manhattan distance to the
// center.
//
// Distances are computed in doubled coordinates to stay integer for even board sizes, and halved at
// the end.
func centrality(b *board.Board, player board.Occupant) float64 {
	var doubled int
	for pos, occupant := range b.Occupied() {
		if occupant == player {
			doubled += 2*centralityBase - doubledCenterDistance(pos, b.Size())
		}
	}
	return float64(doubled) / 2
}

// doubledCenterDistance is twice the manhattan distance from pos to the (possibly fractional) center.
func doubledCenterDistance(pos board.Pos, size int) int {
	return generics.Abs(2*int(pos[0])-(size-1)) + generics.Abs(2*int(pos[1])-(size-1))
}

// isDecided returns whether score says a side already won or was cut off.
func isDecided(score float32) bool {
	return math32.Abs(score) > WinScore-nearWinMargin
}
