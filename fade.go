package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colorFade eases a displayed color toward the color of the current widget
// state. A zero duration snaps immediately.
type colorFade struct {
	tweens  [4]*gween.Tween
	current Color
	target  Color
	active  bool
	started bool
}

// set retargets the fade. Retargeting to the current target is a no-op.
func (f *colorFade) set(to Color, duration float64) {
	if f.started && to == f.target {
		return
	}
	f.target = to
	if !f.started || duration <= 0 {
		f.started = true
		f.current = to
		f.active = false
		return
	}
	d := float32(duration)
	f.tweens[0] = gween.New(float32(f.current.R), float32(to.R), d, ease.OutQuad)
	f.tweens[1] = gween.New(float32(f.current.G), float32(to.G), d, ease.OutQuad)
	f.tweens[2] = gween.New(float32(f.current.B), float32(to.B), d, ease.OutQuad)
	f.tweens[3] = gween.New(float32(f.current.A), float32(to.A), d, ease.OutQuad)
	f.active = true
}

// update advances the fade by dt seconds.
func (f *colorFade) update(dt float64) {
	if !f.active {
		return
	}
	var v [4]float32
	done := true
	for i, tw := range f.tweens {
		val, finished := tw.Update(float32(dt))
		v[i] = val
		done = done && finished
	}
	f.current = Color{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
	if done {
		f.current = f.target
		f.active = false
	}
}

func (f *colorFade) color() Color {
	return f.current
}
