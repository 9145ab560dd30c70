package game

import "fmt"

type ActionType int

const (
	// Reveal
	Click ActionType = iota
	// Toggle flag
	RightClick
	// Chord
	MiddleClick
)

type CellAction struct {
	Action   ActionType
	Row, Col int
}

func (action CellAction) String() string {
	var name string
	switch action.Action {
	case Click:
		name = "Click"
	case RightClick:
		name = "RightClick"
	case MiddleClick:
		name = "MiddleClick"
	default:
		name = "Unknown"
	}
	return fmt.Sprintf("%s(%d, %d)", name, action.Row, action.Col)
}

// Director decides the next move for a computer-driven game
type Director interface {
	// Act returns the next action to take on the snapshot, or false if the
	// director has nothing left to do
	Act(*Snapshot) (CellAction, bool)
}
