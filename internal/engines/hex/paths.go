package hex

import (
	"container/heap"

	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/janpfeifer/boardbots/internal/generics"
)

// Unreachable is the distance of a side that can no longer connect its edges. It is a sentinel
// rather than an infinity: compare against it with >=.
const Unreachable = 999999

// directions of the 6 neighbours in axial coordinates (q, r).
var directions = [6]board.Pos{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}

// Neighbours returns the in-bounds neighbours of pos.
func Neighbours(b *board.Board, pos board.Pos) []board.Pos {
	neighbours := make([]board.Pos, 0, len(directions))
	for _, d := range directions {
		if n := pos.Add(d); b.InBounds(n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// edgeCell returns the i-th cell of the starting edge of player (i from 0 to size-1):
// PlayerA starts at q=0, PlayerB at r=0.
func edgeCell(player board.Occupant, i int) board.Pos {
	if player == board.PlayerA {
		return board.P(0, i)
	}
	return board.P(i, 0)
}

// onTargetEdge returns whether pos is on the edge player must reach: q=size-1 for PlayerA and
// r=size-1 for PlayerB.
func onTargetEdge(player board.Occupant, pos board.Pos, size int) bool {
	if player == board.PlayerA {
		return int(pos[0]) == size-1
	}
	return int(pos[1]) == size-1
}

// ConnectsEdges returns whether player has a chain of its cells joining its two edges.
//
// It runs a breadth-first traversal seeded with all the player's cells on its starting edge.
func ConnectsEdges(b *board.Board, player board.Occupant) bool {
	size := b.Size()
	visited := generics.MakeSet[board.Pos](size * size)
	var queue []board.Pos
	for i := range size {
		if start := edgeCell(player, i); b.At(start) == player {
			visited.Insert(start)
			queue = append(queue, start)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if onTargetEdge(player, current, size) {
			return true
		}
		for _, n := range Neighbours(b, current) {
			if !visited.Has(n) && b.At(n) == player {
				visited.Insert(n)
				queue = append(queue, n)
			}
		}
	}
	return false
}

// cellCost for player to go through pos: 0 if already owned, 1 if empty and Unreachable if owned
// by the opponent.
func cellCost(b *board.Board, player board.Occupant, pos board.Pos) int {
	switch b.At(pos) {
	case player:
		return 0
	case board.Empty:
		return 1
	}
	return Unreachable
}

// ShortestPath returns the minimum number of empty cells player still needs to connect its edges,
// 0 if it is already connected, or Unreachable if the opponent already cut it off.
//
// It is a Dijkstra search where entering a cell costs cellCost.
func ShortestPath(b *board.Board, player board.Occupant) int {
	size := b.Size()
	dist := make([]int, size*size)
	for ii := range dist {
		dist[ii] = Unreachable
	}
	index := func(pos board.Pos) int { return int(pos[0])*size + int(pos[1]) }

	queue := &distanceQueue{}
	for i := range size {
		start := edgeCell(player, i)
		if cost := cellCost(b, player, start); cost < dist[index(start)] {
			dist[index(start)] = cost
			heap.Push(queue, queuedCell{pos: start, dist: cost})
		}
	}

	for queue.Len() > 0 {
		current := heap.Pop(queue).(queuedCell)
		if current.dist > dist[index(current.pos)] {
			// Stale entry, a shorter path was already found.
			continue
		}
		if onTargetEdge(player, current.pos, size) {
			// Cells are popped in increasing distance, so this is the shortest path.
			return current.dist
		}
		for _, n := range Neighbours(b, current.pos) {
			cost := cellCost(b, player, n)
			if cost >= Unreachable {
				continue
			}
			if d := current.dist + cost; d < dist[index(n)] {
				dist[index(n)] = d
				heap.Push(queue, queuedCell{pos: n, dist: d})
			}
		}
	}
	return Unreachable
}

type queuedCell struct {
	pos  board.Pos
	dist int
}

// distanceQueue implements heap.Interface, popping the smallest distance first.
type distanceQueue []queuedCell

func (q distanceQueue) Len() int           { return len(q) }
func (q distanceQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distanceQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *distanceQueue) Push(x any)        { *q = append(*q, x.(queuedCell)) }
func (q *distanceQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
