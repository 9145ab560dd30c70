package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/difficulty"
)

func TestDumpRoundTrip(t *testing.T) {
	engine, _ := newTestEngine(&layoutShuffler{layouts: [][]int{{2, 9}}})
	snapshot := engine.New(difficulty.Settings{Columns: 4, Rows: 3, BombOdds: 2.0 / 12})

	snapshot, _ = engine.ToggleFlag(snapshot, 0, 2)
	snapshot, _ = engine.Reveal(snapshot, 2, 3)
	require.Equal(t, Playing, snapshot.State)

	serialized := NewDump(snapshot).Serialize()

	dump, err := LoadDump(serialized)
	require.NoError(t, err)
	loaded, err := dump.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, snapshot.State, loaded.State)
	assert.Equal(t, snapshot.Board, loaded.Board)
	assert.Equal(t, snapshot.Proximities, loaded.Proximities)
	assert.Equal(t, snapshot.BombsCount, loaded.BombsCount)
	assert.Equal(t, snapshot.UncoveredCount, loaded.UncoveredCount)
	assert.Equal(t, snapshot.FlagsCount, loaded.FlagsCount)
	assert.Equal(t, snapshot.MovesCount, loaded.MovesCount)
	assert.Equal(t, snapshot.Settings(), loaded.Settings())
	require.NotNil(t, loaded.StartedAt)
	assert.True(t, snapshot.StartedAt.Equal(*loaded.StartedAt))
	assert.Nil(t, loaded.FinishedAt)
}

func TestLoadDump(t *testing.T) {
	dump, err := LoadDump(`
state: game_over
moves: 2
board:
- ".*"
- "f#"
`)
	require.NoError(t, err)

	snapshot, err := dump.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, GameOver, snapshot.State)
	assert.Equal(t, 2, snapshot.Columns)
	assert.Equal(t, 1, snapshot.BombsCount)
	assert.Equal(t, 2, snapshot.UncoveredCount)
	assert.Equal(t, 1, snapshot.FlagsCount)
	assert.Nil(t, snapshot.StartedAt)
}

func TestLoadDumpErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":    "board: [",
		"bad state":   "state: sleeping\nboard: ['#']",
		"bad board":   "state: fresh\nboard: ['#', '##']",
		"no board":    "state: fresh",
		"bad started": "state: playing\nstarted_at: yesterday\nboard: ['.']",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			dump, err := LoadDump(in)
			if err == nil {
				_, err = dump.Snapshot()
			}
			assert.Error(t, err)
		})
	}
}
