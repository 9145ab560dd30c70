package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBombCount(t *testing.T) {
	tests := []struct {
		columns, rows int
		odds          float64
		expected      int
	}{
		{9, 9, 10.0 / 81, 10},
		{30, 16, 99.0 / 480, 99},
		{3, 3, 0.5, 5},
		{1, 1, 0.4, 0},
		{4, 4, 0, 0},
		{4, 4, 1, 16},
		{4, 4, 1.5, 16},
		{4, 4, -1, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, BombCount(test.columns, test.rows, test.odds),
			"%dx%d@%v", test.columns, test.rows, test.odds)
	}
}

func bruteForceProximity(board Board, row, col int) int {
	count := 0
	for y := row - 1; y <= row+1; y++ {
		for x := col - 1; x <= col+1; x++ {
			if y == row && x == col {
				continue
			}
			if y < 0 || x < 0 || y >= len(board) || x >= len(board[y]) {
				continue
			}
			if board[y][x].Bomb == Bomb {
				count++
			}
		}
	}
	return count
}

func TestGenerate(t *testing.T) {
	sizes := []struct {
		name          string
		columns, rows int
		odds          float64
	}{
		{"1x1 empty", 1, 1, 0},
		{"1x1 full", 1, 1, 1},
		{"9x9", 9, 9, 10.0 / 81},
		{"16x16", 16, 16, 40.0 / 256},
		{"30x16", 30, 16, 99.0 / 480},
		{"7x3 dense", 7, 3, 0.8},
		{"1x20 strip", 1, 20, 0.3},
	}

	for _, size := range sizes {
		t.Run(size.name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				board, proximities, numBombs := Generate(size.columns, size.rows, size.odds, rand.New(rand.NewSource(seed)))

				require.Equal(t, BombCount(size.columns, size.rows, size.odds), numBombs)
				require.Equal(t, size.rows, board.Rows())
				require.Equal(t, size.columns, board.Columns())
				require.Equal(t, numBombs, board.Count(Tile.IsBomb))
				require.Equal(t, board.NumTiles(), board.Count(func(tile Tile) bool {
					return tile.User == Covered
				}))

				for y := range board {
					for x := range board[y] {
						require.Equal(t, bruteForceProximity(board, y, x), proximities[y][x], "proximity at (%d, %d)", y, x)
					}
				}
			}
		})
	}
}

func TestGenerateIsSeedDeterministic(t *testing.T) {
	a, _, _ := Generate(16, 16, 0.2, rand.New(rand.NewSource(42)))
	b, _, _ := Generate(16, 16, 0.2, rand.New(rand.NewSource(42)))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateUsesShuffler(t *testing.T) {
	board, proximities, numBombs := Generate(3, 3, 1.0/9, &layoutShuffler{layouts: [][]int{{4}}})

	require.Equal(t, 1, numBombs)
	assert.Equal(t, "###\n#O#\n###", board.String())
	assert.Equal(t, Proximities{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, proximities)
}

func TestEachNeighbor(t *testing.T) {
	board, err := ParseBoard("###", "###", "###")
	require.NoError(t, err)

	count := func(row, col int) int {
		n := 0
		board.EachNeighbor(row, col, func(int, int) { n++ })
		return n
	}

	assert.Equal(t, 3, count(0, 0))
	assert.Equal(t, 5, count(0, 1))
	assert.Equal(t, 8, count(1, 1))
	assert.Equal(t, 3, count(2, 2))
}

func TestParseBoard(t *testing.T) {
	board, err := ParseBoard("#O.", "fF*")
	require.NoError(t, err)

	assert.Equal(t, []Tile{
		{Bomb: Blank, User: Covered},
		{Bomb: Bomb, User: Covered},
		{Bomb: Blank, User: Open},
	}, board[0])
	assert.Equal(t, []Tile{
		{Bomb: Blank, User: Flagged},
		{Bomb: Bomb, User: Flagged},
		{Bomb: Bomb, User: HitBomb},
	}, board[1])
	assert.Equal(t, "#O.\nfF*", board.String())

	_, err = ParseBoard()
	assert.Error(t, err)

	_, err = ParseBoard("##", "#")
	assert.EqualError(t, err, "row 1 has 1 tiles, expected 2")

	_, err = ParseBoard("#?")
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	board, err := ParseBoard("##", "##")
	require.NoError(t, err)

	cloned := board.clone()
	cloned[1][1].User = Flagged

	assert.Equal(t, Covered, board[1][1].User)
}
