package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/difficulty"
)

func TestTweenStream(t *testing.T) {
	engine, _ := newTestEngine(nil)
	table := engine.Difficulties()

	stream := engine.Tween(table[difficulty.Beginner], table[difficulty.Expert])

	var frames []*Snapshot
	for snapshot, ok := stream.Next(); ok; snapshot, ok = stream.Next() {
		frames = append(frames, snapshot)
	}
	require.Len(t, frames, difficulty.TweenSteps)

	for i, frame := range frames {
		assert.Equal(t, Fresh, frame.State, "frame %d", i)
		requireConsistent(t, frame)
		if i > 0 {
			assert.GreaterOrEqual(t, frame.Columns, frames[i-1].Columns)
			assert.GreaterOrEqual(t, frame.Rows, frames[i-1].Rows)
		}
	}

	last := frames[len(frames)-1]
	assert.Equal(t, table[difficulty.Expert], last.Settings())
	assert.Equal(t, 99, last.BombsCount)

	// Frames are independent games
	revealed, changed := engine.Reveal(frames[0], 0, 0)
	require.True(t, changed)
	assert.NotSame(t, frames[0], revealed)
	assert.Zero(t, frames[1].MovesCount)

	stream.Reset()
	first, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, frames[0].Settings(), first.Settings())
}
