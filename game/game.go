package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/difficulty"
)

// Clock provides the time used to stamp the start and end of games
type Clock func() time.Time

type EngineConfig struct {
	// Source of the current time; time.Now when nil
	Clock Clock

	// Random source for bomb placement. When nil, one is seeded from Seed.
	Rand Shuffler
	Seed int64

	Difficulties difficulty.Table

	Logger logrus.FieldLogger
}

func NewEngineConfig() EngineConfig {
	return EngineConfig{
		Clock:        time.Now,
		Seed:         time.Now().UnixNano(),
		Difficulties: difficulty.Defaults(),
		Logger:       logrus.StandardLogger(),
	}
}

// Engine computes game transitions. Every operation takes a snapshot and
// returns a new one; snapshots are never modified once returned.
//
// An Engine is not safe for concurrent use, as its random source isn't.
type Engine struct {
	now          Clock
	rand         Shuffler
	difficulties difficulty.Table
	log          logrus.FieldLogger
}

func (config EngineConfig) NewEngine() *Engine {
	engine := &Engine{
		now:          config.Clock,
		rand:         config.Rand,
		difficulties: config.Difficulties,
		log:          config.Logger,
	}
	if engine.now == nil {
		engine.now = time.Now
	}
	if engine.rand == nil {
		engine.rand = rand.New(rand.NewSource(config.Seed))
	}
	if engine.difficulties == nil {
		engine.difficulties = difficulty.Defaults()
	}
	if engine.log == nil {
		engine.log = logrus.StandardLogger()
	}
	return engine
}

func (engine *Engine) Difficulties() difficulty.Table {
	return engine.difficulties
}

// Restart begins a new game. Explicit settings take precedence over the
// difficulty id; a *difficulty.ConfigurationError is returned when neither
// resolves.
func (engine *Engine) Restart(id string, override *difficulty.Settings) (*Snapshot, error) {
	settings, err := engine.difficulties.Resolve(id, override)
	if err != nil {
		return nil, err
	}
	return engine.New(settings), nil
}

// New creates a fresh game with the given settings
func (engine *Engine) New(settings difficulty.Settings) *Snapshot {
	board, proximities, numBombs := Generate(settings.Columns, settings.Rows, settings.BombOdds, engine.rand)

	engine.log.WithFields(logrus.Fields{
		"settings": settings,
		"bombs":    numBombs,
	}).Debug("generated board")

	return &Snapshot{
		State:       Fresh,
		Columns:     settings.Columns,
		Rows:        settings.Rows,
		BombOdds:    settings.BombOdds,
		Board:       board,
		Proximities: proximities,
		BombsCount:  numBombs,
	}
}

// BeginMove marks the start of a move, before the tile is released.
func (engine *Engine) BeginMove(snapshot *Snapshot) (*Snapshot, bool) {
	if !snapshot.State.Playable() || snapshot.State == BeginningMove {
		return snapshot, false
	}

	next := *snapshot
	next.State = BeginningMove
	return &next, true
}

// CancelMove abandons a move begun with BeginMove
func (engine *Engine) CancelMove(snapshot *Snapshot) (*Snapshot, bool) {
	if snapshot.State != BeginningMove {
		return snapshot, false
	}

	next := *snapshot
	if next.MovesCount == 0 {
		next.State = Fresh
	} else {
		next.State = Playing
	}
	return &next, true
}

// Reveal opens the tile at (row, col), flooding outward through
// zero-proximity tiles. The first reveal of a game never hits a bomb.
//
// The returned bool is false when nothing happened: the game is over, the
// tile is off the board, or it was already open.
func (engine *Engine) Reveal(snapshot *Snapshot, row, col int) (*Snapshot, bool) {
	if !snapshot.State.Playable() || !snapshot.Board.InBounds(row, col) {
		return snapshot, false
	}
	if snapshot.Board[row][col].IsResolved() {
		return snapshot, false
	}

	next := *snapshot
	if next.MovesCount == 0 && next.Board[row][col].IsBomb() {
		engine.clearFirstMove(&next, row, col)
	}

	engine.open(&next, Coord{Row: row, Col: col})
	return &next, true
}

// Chord reveals every covered neighbour of an open tile, once as many
// neighbours are flagged as the tile has bombs around it. Flagged
// neighbours are left alone. It counts as a single move.
func (engine *Engine) Chord(snapshot *Snapshot, row, col int) (*Snapshot, bool) {
	if !snapshot.State.Playable() || !snapshot.Board.InBounds(row, col) {
		return snapshot, false
	}
	if snapshot.Board[row][col].User != Open {
		return snapshot, false
	}

	numFlaggedNeighbors := 0
	var targets []Coord
	snapshot.Board.EachNeighbor(row, col, func(y, x int) {
		switch snapshot.Board[y][x].User {
		case Flagged:
			numFlaggedNeighbors++
		case Covered:
			targets = append(targets, Coord{Row: y, Col: x})
		}
	})

	if numFlaggedNeighbors != snapshot.Proximities[row][col] || len(targets) == 0 {
		return snapshot, false
	}

	next := *snapshot
	engine.open(&next, targets...)
	return &next, true
}

// ToggleFlag flags a covered tile, or unflags a flagged one. Open tiles are
// left alone. No game state is required.
func (engine *Engine) ToggleFlag(snapshot *Snapshot, row, col int) (*Snapshot, bool) {
	if !snapshot.Board.InBounds(row, col) {
		return snapshot, false
	}

	next := *snapshot
	switch snapshot.Board[row][col].User {
	case Covered:
		next.Board = snapshot.Board.clone()
		next.Board[row][col].User = Flagged
		next.FlagsCount++
	case Flagged:
		next.Board = snapshot.Board.clone()
		next.Board[row][col].User = Covered
		next.FlagsCount--
	default:
		return snapshot, false
	}
	return &next, true
}

// Apply performs a single action against the snapshot
func (engine *Engine) Apply(snapshot *Snapshot, action CellAction) (*Snapshot, bool) {
	switch action.Action {
	case Click:
		return engine.Reveal(snapshot, action.Row, action.Col)
	case RightClick:
		return engine.ToggleFlag(snapshot, action.Row, action.Col)
	case MiddleClick:
		return engine.Chord(snapshot, action.Row, action.Col)
	default:
		return snapshot, false
	}
}

// clearFirstMove regenerates the board until (row, col) holds no bomb.
// Flags placed before the first move are carried over to the new board.
func (engine *Engine) clearFirstMove(snapshot *Snapshot, row, col int) {
	if snapshot.BombsCount >= snapshot.Board.NumTiles() {
		// Every tile is a bomb; no board could ever satisfy this
		return
	}

	previous := snapshot.Board
	board, proximities := previous, snapshot.Proximities
	attempts := 0
	for board[row][col].IsBomb() {
		board, proximities, _ = Generate(snapshot.Columns, snapshot.Rows, snapshot.BombOdds, engine.rand)
		attempts++
	}

	for y := range board {
		for x := range board[y] {
			board[y][x].User = previous[y][x].User
		}
	}

	snapshot.Board, snapshot.Proximities = board, proximities

	engine.log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"attempts": attempts,
	}).Debug("regenerated board to clear first move")
}

// open floods from the given tiles and settles the game state afterward
func (engine *Engine) open(snapshot *Snapshot, seeds ...Coord) {
	if snapshot.StartedAt == nil {
		startedAt := engine.now()
		snapshot.StartedAt = &startedAt
	}

	board, tally := flood(snapshot.Board, snapshot.Proximities, seeds...)
	snapshot.Board = board
	snapshot.UncoveredCount += tally.uncovered
	snapshot.FlagsCount -= tally.unflagged
	snapshot.MovesCount++

	fields := logrus.Fields{
		"move":      snapshot.MovesCount,
		"uncovered": snapshot.UncoveredCount,
	}

	switch {
	case tally.hitBomb:
		snapshot.State = GameOver
		engine.finish(snapshot)
		engine.log.WithFields(fields).Debug("bomb hit; game over")
	case snapshot.UncoveredCount+snapshot.BombsCount == snapshot.Board.NumTiles():
		snapshot.State = Winner
		engine.finish(snapshot)
		engine.log.WithFields(fields).Debug("all safe tiles uncovered; game won")
	default:
		snapshot.State = Playing
	}
}

func (engine *Engine) finish(snapshot *Snapshot) {
	finishedAt := engine.now()
	snapshot.FinishedAt = &finishedAt
}
