package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/sweepcore/util/collections"
)

// floodTally accumulates the counter changes made by a single flood
type floodTally struct {
	uncovered int
	unflagged int
	hitBomb   bool
}

// flood reveals the seed tiles into a copy of board, spreading breadth-first
// through every zero-proximity blank tile it opens. It stops as soon as a
// bomb is hit; tiles opened before that stay open.
func flood(board Board, proximities Proximities, seeds ...Coord) (Board, floodTally) {
	revealed := board.clone()
	tally := floodTally{}

	visited := make(collections.Set[Coord])
	var visitQueue deque.Deque

	enqueue := func(coord Coord) {
		// Don't visit, if already visited
		if visited.Contains(coord) {
			return
		}
		visited.Add(coord)
		visitQueue.PushBack(coord)
	}

	for _, seed := range seeds {
		enqueue(seed)
	}

	for visitQueue.Len() > 0 {
		coord := visitQueue.PopFront().(Coord)
		tile := &revealed[coord.Row][coord.Col]

		if tile.IsResolved() {
			continue
		}
		if tile.User == Flagged {
			tally.unflagged++
		}
		tally.uncovered++

		if tile.IsBomb() {
			tile.User = HitBomb
			tally.hitBomb = true
			break
		}
		tile.User = Open

		if proximities[coord.Row][coord.Col] == 0 {
			revealed.EachNeighbor(coord.Row, coord.Col, func(row, col int) {
				enqueue(Coord{Row: row, Col: col})
			})
		}
	}

	return revealed, tally
}
