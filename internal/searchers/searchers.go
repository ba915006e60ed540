// Package searchers defines what a game position must provide to be searched, and the statistics
// collected by the search algorithms.
package searchers

import "fmt"

// Game is a mutable position that a searcher explores by playing and undoing moves in place.
//
// Scores are always from the perspective of the maximizing side (the engine's player), so the
// searcher doesn't need to know about players, only whether the side to move maximizes.
type Game[M any] interface {
	// Leaf is called when a node is entered, before any expansion. If isLeaf is true the node is not
	// expanded and score is used as its value.
	//
	// depthLeft is the number of plies still allowed below this node (0 means the depth limit was
	// reached), and ply is the number of moves played since the root.
	Leaf(depthLeft, ply int) (score float64, isLeaf bool)

	// Moves returns the candidate moves at the current node, in the order they should be explored.
	Moves(depthLeft int, maximizing bool) []M

	// Play the move for the maximizing side (if maximizing is true) or the minimizing side.
	Play(move M, maximizing bool)

	// Undo must restore exactly the position before the matching Play.
	Undo(move M)
}

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited, including the root.
	Nodes int

	// Leaves are nodes scored without expansion: depth limit, terminal or short-circuited positions.
	Leaves int

	// Prunes counts alpha-beta cut-offs.
	Prunes int
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d, leaves=%d, prunes=%d", s.Nodes, s.Leaves, s.Prunes)
}
