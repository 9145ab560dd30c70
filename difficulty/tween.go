package difficulty

import "math"

// TweenSteps is the number of frames produced when animating between two
// difficulties
const TweenSteps = 10

// Tween yields settings linearly interpolated between two difficulties, one
// frame at a time. Only the frame index is kept; Reset restarts the sequence.
type Tween struct {
	from, to Settings
	steps    int
	frame    int
}

func NewTween(from, to Settings, steps int) *Tween {
	if steps < 1 {
		steps = 1
	}
	return &Tween{from: from, to: to, steps: steps}
}

// Next returns the next frame's settings, or false once the target has been
// produced. The final frame always equals the target settings.
func (tween *Tween) Next() (Settings, bool) {
	if tween.frame >= tween.steps {
		return Settings{}, false
	}
	tween.frame++

	if tween.frame == tween.steps {
		return tween.to, true
	}

	progress := float64(tween.frame) / float64(tween.steps)
	return Settings{
		Columns:  lerp(tween.from.Columns, tween.to.Columns, progress),
		Rows:     lerp(tween.from.Rows, tween.to.Rows, progress),
		BombOdds: tween.to.BombOdds,
	}, true
}

func (tween *Tween) Reset() {
	tween.frame = 0
}

func (tween *Tween) Len() int {
	return tween.steps
}

func lerp(from, to int, progress float64) int {
	return int(math.Round(float64(from) + float64(to-from)*progress))
}
