package game

import "github.com/they4kman/sweepcore/difficulty"

// SnapshotStream produces one freshly generated game per frame of a
// difficulty change. Each snapshot is independent of the others; stopping
// early needs no cleanup.
type SnapshotStream struct {
	engine *Engine
	tween  *difficulty.Tween
}

// Tween returns a stream of games whose size moves from one difficulty to
// another over difficulty.TweenSteps frames
func (engine *Engine) Tween(from, to difficulty.Settings) *SnapshotStream {
	return &SnapshotStream{
		engine: engine,
		tween:  difficulty.NewTween(from, to, difficulty.TweenSteps),
	}
}

func (stream *SnapshotStream) Next() (*Snapshot, bool) {
	settings, ok := stream.tween.Next()
	if !ok {
		return nil, false
	}
	return stream.engine.New(settings), true
}

func (stream *SnapshotStream) Reset() {
	stream.tween.Reset()
}
