package game

type BombState int
type UserState int
type GameState int

const (
	Blank BombState = iota
	Bomb
)

// A tile only ever moves Covered -> {Open, Flagged, HitBomb} or
// Flagged -> Covered. Open and HitBomb are final.
const (
	Covered UserState = iota
	Open
	Flagged
	HitBomb
)

const (
	Fresh GameState = iota
	BeginningMove
	Playing
	GameOver
	Winner
)

var gameStateNames = map[GameState]string{
	Fresh:         "fresh",
	BeginningMove: "beginning_move",
	Playing:       "playing",
	GameOver:      "game_over",
	Winner:        "winner",
}

func (state GameState) String() string {
	if name, ok := gameStateNames[state]; ok {
		return name
	}
	return "unknown"
}

// Playable reports whether moves may still be made
func (state GameState) Playable() bool {
	switch state {
	case Fresh, Playing, BeginningMove:
		return true
	default:
		return false
	}
}

// IsOver reports whether the game ended, won or lost
func (state GameState) IsOver() bool {
	return state == GameOver || state == Winner
}

func parseGameState(name string) (GameState, bool) {
	for state, stateName := range gameStateNames {
		if stateName == name {
			return state, true
		}
	}
	return 0, false
}

func (state UserState) String() string {
	switch state {
	case Covered:
		return "covered"
	case Open:
		return "open"
	case Flagged:
		return "flag"
	case HitBomb:
		return "hit_bomb"
	default:
		return "unknown"
	}
}
