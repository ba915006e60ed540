package blocks

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// Placement is where a piece lands: the column X and row Y of the top-left corner of the Shape, which
// is the piece after Rotation clockwise rotations.
type Placement struct {
	X, Y     int
	Rotation int
	Shape    Shape

	// Features and Score of the stack after the piece is placed.
	Features Features
	Score    float64
}

// String implements fmt.Stringer.
func (p Placement) String() string {
	return fmt.Sprintf("x=%d, y=%d, rotation=%d (score %.2f: %s)", p.X, p.Y, p.Rotation, p.Score, p.Features)
}

// Advisor recommends placements. It is stateless and can be shared.
type Advisor struct {
	weights Weights
}

// NewAdvisor with the given weights. See DefaultWeights and ParseWeights.
func NewAdvisor(weights Weights) *Advisor {
	return &Advisor{weights: weights}
}

// Weights used to score placements.
func (a *Advisor) Weights() Weights {
	return a.weights
}

// Placements enumerates every valid placement of piece on the stack, by rotation and then by column,
// from the leftmost to the rightmost.
//
// Only the piece's final resting position counts: it is dropped straight down from above the stack,
// and there is no look-ahead to the next piece.
func (a *Advisor) Placements(s *Stack, piece Shape) []Placement {
	var placements []Placement
	for rotation, shape := range piece.Rotations() {
		for x := -(shape.Width() - 1); x < Cols; x++ {
			y, valid := s.LandingRow(shape, x)
			if !valid {
				continue
			}
			placed := s.Place(shape, x, y)
			features := placed.Features()
			placements = append(placements, Placement{
				X: x, Y: y, Rotation: rotation, Shape: shape,
				Features: features,
				Score:    a.weights.Score(features),
			})
		}
	}
	return placements
}

// Advise returns the placement of piece with the highest score. The first placement enumerated wins
// ties. It returns false if the piece can't be placed anywhere.
func (a *Advisor) Advise(s *Stack, piece Shape) (best Placement, found bool) {
	best.Score = math.Inf(-1)
	for _, p := range a.Placements(s, piece) {
		if p.Score > best.Score {
			best, found = p, true
		}
	}
	if klog.V(3).Enabled() {
		klog.Infof("blocks: advise %s (found=%v)", best, found)
	}
	return
}
