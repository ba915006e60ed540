package alphabeta_test

import (
	"testing"

	"github.com/janpfeifer/boardbots/internal/searchers/alphabeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node of an explicit game tree: leaves have a value, inner nodes have children.
type node struct {
	value    float64
	children []*node
}

func leaves(values ...float64) []*node {
	nodes := make([]*node, len(values))
	for ii, v := range values {
		nodes[ii] = &node{value: v}
	}
	return nodes
}

// treeGame walks an explicit tree, keeping the path from the root as its "position".
type treeGame struct {
	root    *node
	path    []int
	visited int
}

func (g *treeGame) current() *node {
	n := g.root
	for _, idx := range g.path {
		n = n.children[idx]
	}
	return n
}

func (g *treeGame) Leaf(depthLeft, ply int) (float64, bool) {
	n := g.current()
	if len(n.children) == 0 {
		g.visited++
		return n.value, true
	}
	if depthLeft <= 0 {
		return 0, true
	}
	return 0, false
}

func (g *treeGame) Moves(depthLeft int, maximizing bool) []int {
	n := g.current()
	moves := make([]int, len(n.children))
	for ii := range moves {
		moves[ii] = ii
	}
	return moves
}

func (g *treeGame) Play(move int, maximizing bool) {
	g.path = append(g.path, move)
}

func (g *treeGame) Undo(move int) {
	if g.path[len(g.path)-1] != move {
		panic("undo out of order")
	}
	g.path = g.path[:len(g.path)-1]
}

// classicTree is a depth-3 binary tree with minimax value 5, reached by the root move 0.
func classicTree() *node {
	return &node{children: []*node{
		{children: []*node{
			{children: leaves(3, 5)},
			{children: leaves(6, 9)},
		}},
		{children: []*node{
			{children: leaves(1, 2)},
			{children: leaves(0, -1)},
		}},
	}}
}

func TestSearchMinimaxValue(t *testing.T) {
	for _, pruning := range []bool{false, true} {
		game := &treeGame{root: classicTree()}
		searcher := alphabeta.New[int]().WithMaxDepth(3).WithPruning(pruning)
		result := searcher.Search(game)
		require.True(t, result.Found)
		assert.Equal(t, 0, result.Move, "pruning=%v", pruning)
		assert.Equal(t, 5.0, result.Score, "pruning=%v", pruning)
		assert.Empty(t, game.path, "all moves must be undone")
	}
}

func TestPruningVisitsFewerLeaves(t *testing.T) {
	full := &treeGame{root: classicTree()}
	alphabeta.New[int]().WithMaxDepth(3).WithPruning(false).Search(full)
	pruned := &treeGame{root: classicTree()}
	searcher := alphabeta.New[int]().WithMaxDepth(3)
	searcher.Search(pruned)
	assert.Equal(t, 8, full.visited)
	assert.Less(t, pruned.visited, full.visited)
	assert.Positive(t, searcher.Stats().Prunes)
	assert.Positive(t, searcher.Stats().Nodes)
}

func TestFirstMoveWinsTies(t *testing.T) {
	game := &treeGame{root: &node{children: leaves(1, 4, 4, 2)}}
	result := alphabeta.New[int]().WithMaxDepth(1).Search(game)
	assert.Equal(t, 1, result.Move)
	assert.Equal(t, 4.0, result.Score)
}

func TestRootWithoutMoves(t *testing.T) {
	game := &treeGame{root: &node{value: 7}}
	result := alphabeta.New[int]().Search(game)
	assert.False(t, result.Found)
	assert.Equal(t, 7.0, result.Score)
}

func TestDepthLimit(t *testing.T) {
	// With depth 1 the inner nodes are leaves valued 0 by treeGame, and the first one is chosen.
	game := &treeGame{root: classicTree()}
	result := alphabeta.New[int]().WithMaxDepth(1).Search(game)
	assert.True(t, result.Found)
	assert.Equal(t, 0, result.Move)
	assert.Equal(t, 0.0, result.Score)
}
