package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

// Director plays by deduction: every open number says how many bombs hide
// among its covered neighbours. Certain moves are taken first, then the
// least likely bomb, then a random guess.
type Director struct {
	random *random.Director
	log    logrus.FieldLogger
}

func New(seed int64, log logrus.FieldLogger) *Director {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Director{
		random: random.New(seed),
		log:    log,
	}
}

// Observation states that exactly numMines of cells are bombs
type Observation struct {
	origin   *game.Coord
	numMines int
	cells    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range sortCoords(observation.cells.Values()) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Act(snapshot *game.Snapshot) (game.CellAction, bool) {
	if !snapshot.State.Playable() {
		return game.CellAction{}, false
	}

	observations := simplify(observe(snapshot))

	if action, ok := actDeliberate(observations); ok {
		director.log.WithField("action", action).Debug("deliberate move")
		return action, true
	}
	if action, ok := director.actLowestProbability(snapshot, observations); ok {
		director.log.WithField("action", action).Debug("lowest probability guess")
		return action, true
	}

	action, ok := director.random.Act(snapshot)
	if ok {
		director.log.WithField("action", action).Debug("random guess")
	}
	return action, ok
}

// observe gathers an observation from every open tile bordering covered ones
func observe(snapshot *game.Snapshot) []*Observation {
	var observations []*Observation

	for y, row := range snapshot.Board {
		for x, tile := range row {
			if tile.User != game.Open {
				continue
			}

			origin := game.Coord{Row: y, Col: x}
			observation := &Observation{
				origin:   &origin,
				numMines: snapshot.Proximity(y, x),
				cells:    make(collections.Set[game.Coord]),
			}

			snapshot.Board.EachNeighbor(y, x, func(row, col int) {
				switch snapshot.Board[row][col].User {
				case game.Flagged:
					observation.numMines--
				case game.Covered:
					observation.cells.Add(game.Coord{Row: row, Col: col})
				}
			})

			if len(observation.cells) > 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}

// simplify splits observations which wholly contain another: the cells
// outside the smaller one hold the difference in bombs
func simplify(observations []*Observation) []*Observation {
	simplified := observations
	for i, observation := range observations {
		for j, other := range observations {
			if i == j || len(observation.cells) >= len(other.cells) {
				continue
			}
			if len(observation.cells.Difference(other.cells)) > 0 {
				continue
			}

			simplified = append(simplified, &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			})
		}
	}
	return simplified
}

func actDeliberate(observations []*Observation) (game.CellAction, bool) {
	for _, observation := range observations {
		cells := sortCoords(observation.cells.Values())

		switch observation.numMines {
		case len(cells):
			return game.CellAction{Action: game.RightClick, Row: cells[0].Row, Col: cells[0].Col}, true
		case 0:
			return game.CellAction{Action: game.Click, Row: cells[0].Row, Col: cells[0].Col}, true
		}
	}
	return game.CellAction{}, false
}

func (director *Director) actLowestProbability(snapshot *game.Snapshot, observations []*Observation) (game.CellAction, bool) {
	if len(observations) == 0 {
		return game.CellAction{}, false
	}

	cellProbabilities := make(map[game.Coord]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability < past {
				cellProbabilities[cell] = probability
			}
		}
	}

	lowestProbability := math.Inf(1)
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}

	// A blind guess elsewhere may be safer than the best informed one
	numCovered := snapshot.Board.Count(func(tile game.Tile) bool {
		return tile.User == game.Covered
	})
	if numUnobserved := numCovered - len(cellProbabilities); numUnobserved > 0 {
		density := float64(snapshot.RemainingBombs()) / float64(numCovered)
		if density < lowestProbability {
			return game.CellAction{}, false
		}
	}

	var lowestProbabilityCells []game.Coord
	for _, cell := range sortCoords(keys(cellProbabilities)) {
		if cellProbabilities[cell] <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	pick := director.random.Pick(lowestProbabilityCells)
	return game.CellAction{Action: game.Click, Row: pick.Row, Col: pick.Col}, true
}

func keys(probabilities map[game.Coord]float64) []game.Coord {
	coords := make([]game.Coord, 0, len(probabilities))
	for coord := range probabilities {
		coords = append(coords, coord)
	}
	return coords
}

// sortCoords orders coords row-major, in place
func sortCoords(coords []game.Coord) []game.Coord {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
