package canopy

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionFlags is a bitmask of UI actions. Widgets advertise the actions they
// consume; the focus manager only navigates when the focused widget does not
// consume the requested direction.
type ActionFlags uint8

const (
	ActionUp ActionFlags = 1 << iota
	ActionDown
	ActionLeft
	ActionRight
	ActionValidate
	ActionClick
	ActionCancel
	ActionPointerMove
)

// ActionNavigation covers the four directions.
const ActionNavigation = ActionUp | ActionDown | ActionLeft | ActionRight

// InputDevice identifies the device that produced the most recent input.
type InputDevice uint8

const (
	DeviceKeyboard InputDevice = iota
	DeviceGamepad
	DevicePointer
)

func (d InputDevice) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceGamepad:
		return "gamepad"
	case DevicePointer:
		return "pointer"
	}
	return "unknown"
}

// Input is the per-frame input snapshot consumed by the focus manager and the
// widgets. The Pressed and Released fields are true only on the frame of the
// transition; the Down fields are held state.
type Input struct {
	Up, Down, Left, Right bool

	ValidatePressed  bool
	ValidateDown     bool
	ValidateReleased bool

	ClickPressed  bool
	ClickDown     bool
	ClickReleased bool

	CancelPressed bool

	PointerMoved bool
	PointerPx    Vec2 // window pixels, Y down
	PointerUI    Vec2 // UI units, Y up

	LastDevice InputDevice
}

// NavFlags returns the directions requested this frame.
func (in *Input) NavFlags() ActionFlags {
	var f ActionFlags
	if in.Up {
		f |= ActionUp
	}
	if in.Down {
		f |= ActionDown
	}
	if in.Left {
		f |= ActionLeft
	}
	if in.Right {
		f |= ActionRight
	}
	return f
}

// --- Bindings ---

// KeyBindings maps UI actions to keyboard keys.
type KeyBindings struct {
	Up       ebiten.Key `yaml:"up"`
	Down     ebiten.Key `yaml:"down"`
	Left     ebiten.Key `yaml:"left"`
	Right    ebiten.Key `yaml:"right"`
	Validate ebiten.Key `yaml:"validate"`
	Cancel   ebiten.Key `yaml:"cancel"`
}

// GamepadBindings maps UI actions to standard gamepad buttons and the stick.
type GamepadBindings struct {
	Up       ebiten.StandardGamepadButton `yaml:"-"`
	Down     ebiten.StandardGamepadButton `yaml:"-"`
	Left     ebiten.StandardGamepadButton `yaml:"-"`
	Right    ebiten.StandardGamepadButton `yaml:"-"`
	Validate ebiten.StandardGamepadButton `yaml:"-"`
	Cancel   ebiten.StandardGamepadButton `yaml:"-"`
	AxisX    ebiten.StandardGamepadAxis   `yaml:"-"`
	AxisY    ebiten.StandardGamepadAxis   `yaml:"-"`
	// AxisThreshold is the stick deflection in [0, 1] that counts as a
	// direction press. Only the crossing counts; holding does not repeat.
	AxisThreshold float64 `yaml:"axisThreshold"`
}

// InputConfig holds every binding used by InputSource.
type InputConfig struct {
	KeyboardA KeyBindings     `yaml:"keyboardA"`
	KeyboardB KeyBindings     `yaml:"keyboardB"`
	Gamepad   GamepadBindings `yaml:"gamepad"`
	// RepeatDelay and RepeatInterval control direction key repeat, in ticks.
	// Validate and cancel never repeat.
	RepeatDelay    int `yaml:"repeatDelay"`
	RepeatInterval int `yaml:"repeatInterval"`
}

// DefaultInputConfig binds WASD/Space/Backspace, the arrows with
// Enter/Escape, and the gamepad d-pad, face buttons and left stick.
func DefaultInputConfig() InputConfig {
	return InputConfig{
		KeyboardA: KeyBindings{
			Up: ebiten.KeyW, Down: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD,
			Validate: ebiten.KeySpace, Cancel: ebiten.KeyBackspace,
		},
		KeyboardB: KeyBindings{
			Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown,
			Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight,
			Validate: ebiten.KeyEnter, Cancel: ebiten.KeyEscape,
		},
		Gamepad: GamepadBindings{
			Up:            ebiten.StandardGamepadButtonLeftTop,
			Down:          ebiten.StandardGamepadButtonLeftBottom,
			Left:          ebiten.StandardGamepadButtonLeftLeft,
			Right:         ebiten.StandardGamepadButtonLeftRight,
			Validate:      ebiten.StandardGamepadButtonRightBottom,
			Cancel:        ebiten.StandardGamepadButtonRightRight,
			AxisX:         ebiten.StandardGamepadAxisLeftStickHorizontal,
			AxisY:         ebiten.StandardGamepadAxisLeftStickVertical,
			AxisThreshold: 0.5,
		},
		RepeatDelay:    24,
		RepeatInterval: 4,
	}
}

// --- Input source ---

// rawFrame is the device state sampled for one frame, before edge detection.
// Direction fields are already edge or repeat filtered.
type rawFrame struct {
	up, down, left, right bool
	validateHeld          bool
	cancel                bool
	clickHeld             bool
	cursor                Vec2
	keyboard, gamepad     bool // a bound key or button changed this frame
}

func (r *rawFrame) merge(o rawFrame) {
	r.up = r.up || o.up
	r.down = r.down || o.down
	r.left = r.left || o.left
	r.right = r.right || o.right
	r.validateHeld = r.validateHeld || o.validateHeld
	r.cancel = r.cancel || o.cancel
}

// InputSource turns keyboard, gamepad and mouse state into an Input snapshot
// once per frame.
type InputSource struct {
	Config InputConfig

	state        Input
	validateHeld bool
	clickHeld    bool
	sticks       map[ebiten.GamepadID]Vec2
	gamepadIDs   []ebiten.GamepadID

	// headless skips device polling; only injected frames reach the snapshot.
	headless bool
}

// NewInputSource creates an input source with the given bindings.
func NewInputSource(cfg InputConfig) *InputSource {
	return &InputSource{
		Config: cfg,
		sticks: make(map[ebiten.GamepadID]Vec2),
	}
}

// Input returns the snapshot computed by the last frame.
func (s *InputSource) Input() *Input {
	return &s.state
}

// SetHeadless stops device polling. Only injected input reaches the
// snapshot, which keeps scripted runs independent of the real devices.
func (s *InputSource) SetHeadless(headless bool) { s.headless = headless }

// Headless reports whether device polling is off.
func (s *InputSource) Headless() bool { return s.headless }

// poll samples every device. In headless mode the cursor stays where it was.
func (s *InputSource) poll() rawFrame {
	raw := rawFrame{cursor: s.state.PointerPx}
	if s.headless {
		raw.validateHeld = s.validateHeld
		raw.clickHeld = s.clickHeld
		return raw
	}
	s.pollKeyboard(&raw, &s.Config.KeyboardA)
	s.pollKeyboard(&raw, &s.Config.KeyboardB)
	s.pollGamepads(&raw)

	mx, my := ebiten.CursorPosition()
	raw.cursor = Vec2{float64(mx), float64(my)}
	raw.clickHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return raw
}

func (s *InputSource) pollKeyboard(raw *rawFrame, kb *KeyBindings) {
	var f rawFrame
	f.up = s.keyRepeated(kb.Up)
	f.down = s.keyRepeated(kb.Down)
	f.left = s.keyRepeated(kb.Left)
	f.right = s.keyRepeated(kb.Right)
	f.validateHeld = ebiten.IsKeyPressed(kb.Validate)
	f.cancel = inpututil.IsKeyJustPressed(kb.Cancel)
	if f.up || f.down || f.left || f.right || f.cancel ||
		inpututil.IsKeyJustPressed(kb.Validate) || inpututil.IsKeyJustReleased(kb.Validate) {
		raw.keyboard = true
	}
	raw.merge(f)
}

// keyRepeated reports a press on the first tick and then every
// RepeatInterval ticks once RepeatDelay has elapsed.
func (s *InputSource) keyRepeated(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	delay, interval := s.Config.RepeatDelay, s.Config.RepeatInterval
	if delay <= 0 || interval <= 0 || d <= delay {
		return false
	}
	return (d-delay)%interval == 0
}

func (s *InputSource) pollGamepads(raw *rawFrame) {
	gp := &s.Config.Gamepad
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	for _, id := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		var f rawFrame
		f.up = inpututil.IsStandardGamepadButtonJustPressed(id, gp.Up)
		f.down = inpututil.IsStandardGamepadButtonJustPressed(id, gp.Down)
		f.left = inpututil.IsStandardGamepadButtonJustPressed(id, gp.Left)
		f.right = inpututil.IsStandardGamepadButtonJustPressed(id, gp.Right)
		f.validateHeld = ebiten.IsStandardGamepadButtonPressed(id, gp.Validate)
		f.cancel = inpututil.IsStandardGamepadButtonJustPressed(id, gp.Cancel)

		stick := Vec2{
			ebiten.StandardGamepadAxisValue(id, gp.AxisX),
			ebiten.StandardGamepadAxisValue(id, gp.AxisY),
		}
		left, right, up, down := stickCrossings(s.sticks[id], stick, gp.AxisThreshold)
		s.sticks[id] = stick
		f.left, f.right = f.left || left, f.right || right
		f.up, f.down = f.up || up, f.down || down

		if f.up || f.down || f.left || f.right || f.cancel ||
			inpututil.IsStandardGamepadButtonJustPressed(id, gp.Validate) ||
			inpututil.IsStandardGamepadButtonJustReleased(id, gp.Validate) {
			raw.gamepad = true
		}
		raw.merge(f)
	}
}

// stickCrossings reports the directions whose threshold the stick crossed
// between two frames. The vertical axis points down.
func stickCrossings(prev, cur Vec2, threshold float64) (left, right, up, down bool) {
	right = cur.X >= threshold && prev.X < threshold
	left = cur.X <= -threshold && prev.X > -threshold
	down = cur.Y >= threshold && prev.Y < threshold
	up = cur.Y <= -threshold && prev.Y > -threshold
	return
}

// advance folds one raw frame into the snapshot.
func (s *InputSource) advance(raw rawFrame, vp Viewport) *Input {
	in := &s.state
	in.Up, in.Down, in.Left, in.Right = raw.up, raw.down, raw.left, raw.right
	in.CancelPressed = raw.cancel

	in.ValidatePressed = raw.validateHeld && !s.validateHeld
	in.ValidateReleased = !raw.validateHeld && s.validateHeld
	in.ValidateDown = raw.validateHeld
	s.validateHeld = raw.validateHeld

	in.ClickPressed = raw.clickHeld && !s.clickHeld
	in.ClickReleased = !raw.clickHeld && s.clickHeld
	in.ClickDown = raw.clickHeld
	s.clickHeld = raw.clickHeld

	switch {
	case raw.gamepad:
		in.LastDevice = DeviceGamepad
	case raw.keyboard:
		in.LastDevice = DeviceKeyboard
	}
	if in.ClickPressed || in.ClickReleased {
		in.LastDevice = DevicePointer
	}

	in.PointerMoved = false
	if math.Abs(raw.cursor.X-in.PointerPx.X) >= 0.01 || math.Abs(raw.cursor.Y-in.PointerPx.Y) >= 0.01 {
		in.PointerMoved = true
		in.LastDevice = DevicePointer
		in.PointerPx = raw.cursor
	}
	in.PointerUI = vp.ToUI(in.PointerPx)
	return in
}
