package canopy

import (
	"fmt"
	"strings"
)

// Direction is a navigation direction for injected input.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ParseDirection accepts "up", "down", "left" and "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("canopy: unknown direction %q", s)
}

// syntheticFrame is one injected frame of device state. Fields the frame
// does not own keep their current value when it is consumed.
type syntheticFrame struct {
	raw         rawFrame
	ownCursor   bool
	ownClick    bool
	ownValidate bool
}

// InjectNavigate queues a keyboard direction press. Consumes one frame.
func (s *Scene) InjectNavigate(dir Direction) {
	f := syntheticFrame{raw: rawFrame{keyboard: true}}
	switch dir {
	case DirUp:
		f.raw.up = true
	case DirDown:
		f.raw.down = true
	case DirLeft:
		f.raw.left = true
	case DirRight:
		f.raw.right = true
	}
	s.injectQueue = append(s.injectQueue, f)
}

// InjectValidate queues a keyboard validate press followed by its release.
// Consumes two frames.
func (s *Scene) InjectValidate() {
	s.injectQueue = append(s.injectQueue,
		syntheticFrame{raw: rawFrame{keyboard: true, validateHeld: true}, ownValidate: true},
		syntheticFrame{raw: rawFrame{keyboard: true}, ownValidate: true},
	)
}

// InjectCancel queues a keyboard cancel press. Consumes one frame.
func (s *Scene) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticFrame{raw: rawFrame{keyboard: true, cancel: true}})
}

// InjectMove queues a pointer move to the given window pixel coordinates.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{
		raw:       rawFrame{cursor: Vec2{x, y}},
		ownCursor: true,
	})
}

// InjectPress queues a left button press at the given window pixel coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{
		raw:       rawFrame{cursor: Vec2{x, y}, clickHeld: true},
		ownCursor: true,
		ownClick:  true,
	})
}

// InjectRelease queues a left button release at the given window pixel coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticFrame{
		raw:       rawFrame{cursor: Vec2{x, y}},
		ownCursor: true,
		ownClick:  true,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// nextInjected pops one queued frame. Returns false when the queue is empty
// (real devices should be polled instead).
func (s *Scene) nextInjected() (rawFrame, bool) {
	if len(s.injectQueue) == 0 {
		return rawFrame{}, false
	}
	f := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	raw := f.raw
	if !f.ownCursor {
		raw.cursor = s.input.state.PointerPx
	}
	if !f.ownClick {
		raw.clickHeld = s.input.clickHeld
	}
	if !f.ownValidate {
		raw.validateHeld = s.input.validateHeld
	}
	return raw, true
}
