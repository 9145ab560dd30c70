package random

import (
	"math/rand"

	"github.com/they4kman/sweepcore/game"
)

// Director reveals covered, unflagged tiles at random
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Act(snapshot *game.Snapshot) (game.CellAction, bool) {
	if !snapshot.State.Playable() {
		return game.CellAction{}, false
	}

	var candidates []game.Coord
	for y, row := range snapshot.Board {
		for x, tile := range row {
			if tile.User == game.Covered {
				candidates = append(candidates, game.Coord{Row: y, Col: x})
			}
		}
	}
	if len(candidates) == 0 {
		return game.CellAction{}, false
	}

	pick := candidates[director.rand.Intn(len(candidates))]
	return game.CellAction{Action: game.Click, Row: pick.Row, Col: pick.Col}, true
}

// Pick returns one of the given tiles at random
func (director *Director) Pick(coords []game.Coord) game.Coord {
	return coords[director.rand.Intn(len(coords))]
}
