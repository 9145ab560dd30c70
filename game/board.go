package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Board is a row-major grid of tiles, addressed as board[row][col]
type Board [][]Tile

// Proximities holds, for every tile of a board, the number of bombs among its
// (up to 8) neighbours. It's computed once per generated board and shared,
// read-only, by every snapshot of that board.
type Proximities [][]int

type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Shuffler is the random source used to place bombs. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

func (board Board) Rows() int {
	return len(board)
}

func (board Board) Columns() int {
	if len(board) == 0 {
		return 0
	}
	return len(board[0])
}

func (board Board) NumTiles() int {
	return board.Rows() * board.Columns()
}

func (board Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.Rows() && col < board.Columns()
}

// EachNeighbor calls visit with every in-bounds tile surrounding (row, col)
func (board Board) EachNeighbor(row, col int, visit func(row, col int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if board.InBounds(row+dr, col+dc) {
				visit(row+dr, col+dc)
			}
		}
	}
}

// Count returns the number of tiles matching the predicate
func (board Board) Count(match func(Tile) bool) int {
	count := 0
	for _, row := range board {
		for _, tile := range row {
			if match(tile) {
				count++
			}
		}
	}
	return count
}

func (board Board) clone() Board {
	cloned := make(Board, len(board))
	for y, row := range board {
		cloned[y] = make([]Tile, len(row))
		copy(cloned[y], row)
	}
	return cloned
}

func (board Board) String() string {
	var out strings.Builder
	for y, row := range board {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, tile := range row {
			out.WriteString(tile.serialize())
		}
	}
	return out.String()
}

// ParseBoard builds a board from one string per row, using the same
// characters as Board.String:
//
//	#  covered       O  covered bomb
//	.  open          *  hit bomb
//	f  flagged       F  flagged bomb
func ParseBoard(rows ...string) (Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("board is empty")
	}

	columns := len(rows[0])
	board := make(Board, len(rows))
	for y, line := range rows {
		if len(line) != columns {
			return nil, errors.Errorf("row %d has %d tiles, expected %d", y, len(line), columns)
		}

		board[y] = make([]Tile, columns)
		for x, c := range line {
			tile, ok := deserializeTile(c)
			if !ok {
				return nil, errors.Errorf("unknown tile %q at (%d, %d)", c, y, x)
			}
			board[y][x] = tile
		}
	}
	return board, nil
}

// BombCount returns how many bombs a board of the given size receives
func BombCount(columns, rows int, bombOdds float64) int {
	numTiles := columns * rows
	bombs := int(math.Round(bombOdds * float64(numTiles)))
	if bombs < 0 {
		return 0
	}
	if bombs > numTiles {
		return numTiles
	}
	return bombs
}

// Generate creates a fresh, fully covered board with its proximities.
// Bomb placement is a uniform shuffle of bomb and blank markers, laid out
// row-major.
func Generate(columns, rows int, bombOdds float64, rng Shuffler) (Board, Proximities, int) {
	numBombs := BombCount(columns, rows, bombOdds)

	markers := make([]BombState, columns*rows)
	for i := 0; i < numBombs; i++ {
		markers[i] = Bomb
	}
	rng.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})

	board := make(Board, rows)
	for y := 0; y < rows; y++ {
		board[y] = make([]Tile, columns)
		for x := 0; x < columns; x++ {
			board[y][x] = Tile{Bomb: markers[y*columns+x], User: Covered}
		}
	}

	return board, computeProximities(board), numBombs
}

func computeProximities(board Board) Proximities {
	proximities := make(Proximities, board.Rows())
	for y := range board {
		proximities[y] = make([]int, board.Columns())
		for x := range board[y] {
			board.EachNeighbor(y, x, func(row, col int) {
				if board[row][col].IsBomb() {
					proximities[y][x]++
				}
			})
		}
	}
	return proximities
}
