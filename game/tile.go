package game

import "fmt"

// Tile is a single square of the board. Tiles are values: a reveal or flag
// stores a replacement tile into a copied board, never touching the old one.
type Tile struct {
	Bomb BombState
	User UserState
}

func (tile Tile) String() string {
	return fmt.Sprintf("Tile(%s, %s)", tile.serialize(), tile.User)
}

func (tile Tile) IsBomb() bool {
	return tile.Bomb == Bomb
}

// IsResolved reports whether the tile can no longer change
func (tile Tile) IsResolved() bool {
	return tile.User == Open || tile.User == HitBomb
}

func (tile Tile) serialize() string {
	switch {
	case tile.IsBomb():
		switch tile.User {
		case HitBomb:
			return "*"
		case Flagged:
			return "F"
		default:
			return "O"
		}
	case tile.User == Flagged:
		return "f"
	case tile.User == Open:
		return "."
	default:
		return "#"
	}
}

func deserializeTile(c rune) (Tile, bool) {
	switch c {
	case '*':
		return Tile{Bomb: Bomb, User: HitBomb}, true
	case 'F':
		return Tile{Bomb: Bomb, User: Flagged}, true
	case 'O':
		return Tile{Bomb: Bomb, User: Covered}, true
	case 'f':
		return Tile{Bomb: Blank, User: Flagged}, true
	case '.':
		return Tile{Bomb: Blank, User: Open}, true
	case '#':
		return Tile{Bomb: Blank, User: Covered}, true
	default:
		return Tile{}, false
	}
}
