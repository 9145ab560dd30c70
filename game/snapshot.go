package game

import (
	"time"

	"github.com/they4kman/sweepcore/difficulty"
)

// Snapshot is the complete state of a game at one point in time. Engine
// operations never modify a snapshot; they return a new one.
type Snapshot struct {
	State GameState

	Columns, Rows int
	BombOdds      float64

	Board       Board
	Proximities Proximities

	BombsCount     int
	UncoveredCount int
	FlagsCount     int
	MovesCount     int

	// nil until the first reveal
	StartedAt *time.Time
	// nil until the game is won or lost
	FinishedAt *time.Time
}

func (snapshot *Snapshot) Settings() difficulty.Settings {
	return difficulty.Settings{
		Columns:  snapshot.Columns,
		Rows:     snapshot.Rows,
		BombOdds: snapshot.BombOdds,
	}
}

func (snapshot *Snapshot) TileAt(row, col int) (Tile, bool) {
	if !snapshot.Board.InBounds(row, col) {
		return Tile{}, false
	}
	return snapshot.Board[row][col], true
}

func (snapshot *Snapshot) Proximity(row, col int) int {
	if !snapshot.Board.InBounds(row, col) {
		return 0
	}
	return snapshot.Proximities[row][col]
}

// RemainingBombs is the bomb count less the flags placed, as shown on the
// classic counter. It goes negative when too many flags are placed.
func (snapshot *Snapshot) RemainingBombs() int {
	return snapshot.BombsCount - snapshot.FlagsCount
}

// Elapsed returns the play time so far, or of the whole game once over
func (snapshot *Snapshot) Elapsed(now time.Time) time.Duration {
	if snapshot.StartedAt == nil {
		return 0
	}
	if snapshot.FinishedAt != nil {
		return snapshot.FinishedAt.Sub(*snapshot.StartedAt)
	}
	return now.Sub(*snapshot.StartedAt)
}
