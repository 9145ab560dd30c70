package game

import "strings"

// CellState is how a tile is presented to the player
type CellState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	MineUnrevealed
	MineLosing
)

var cellGlyphs = map[CellState]string{
	Unrevealed:     "#",
	Empty:          ".",
	Flag:           "F",
	FlagWrong:      "X",
	MineUnrevealed: "O",
	MineLosing:     "*",
}

func (state CellState) String() string {
	if Number1 <= state && state <= Number8 {
		return string(rune('0' + int(state)))
	}
	if glyph, ok := cellGlyphs[state]; ok {
		return glyph
	}
	return "?"
}

// View returns the presentation of a tile. Once the game is lost, remaining
// bombs and wrongly placed flags are exposed; once won, remaining bombs show
// as flagged. The tiles themselves are not changed.
func View(snapshot *Snapshot, row, col int) CellState {
	tile, ok := snapshot.TileAt(row, col)
	if !ok {
		return Unrevealed
	}

	switch tile.User {
	case HitBomb:
		return MineLosing
	case Open:
		return CellState(snapshot.Proximities[row][col])
	case Flagged:
		if snapshot.State == GameOver && !tile.IsBomb() {
			return FlagWrong
		}
		return Flag
	}

	if tile.IsBomb() {
		switch snapshot.State {
		case GameOver:
			return MineUnrevealed
		case Winner:
			return Flag
		}
	}
	return Unrevealed
}

// Render draws the snapshot as text, one line per row
func Render(snapshot *Snapshot) string {
	var out strings.Builder
	for y := 0; y < snapshot.Board.Rows(); y++ {
		for x := 0; x < snapshot.Board.Columns(); x++ {
			if x > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(View(snapshot, y, x).String())
		}
		out.WriteByte('\n')
	}
	return out.String()
}
