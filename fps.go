package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSLabel creates a label in the top-left corner showing the actual FPS
// and TPS. The text refreshes about twice a second.
func NewFPSLabel(font Font) *Label {
	l := NewLabel("fps", "", font)
	l.Rect = AnchorRect{
		AnchorMin: Vec2{0, 1},
		AnchorMax: Vec2{0, 1},
		OffsetMin: Vec2{2, -12},
		OffsetMax: Vec2{80, -2},
	}
	l.Anchor = AnchorWest
	l.Color = Gray(220)

	var elapsed float64
	l.OnUpdate = func(_ *Node, dt float64) {
		elapsed += dt
		if elapsed < 0.5 && l.Text != "" {
			return
		}
		elapsed = 0
		l.Text = fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return l
}
