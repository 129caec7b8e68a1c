package canopy

// ButtonState is the visual state of a button, derived every frame from its
// focus state, active flag and press tracking.
type ButtonState uint8

const (
	ButtonNormal ButtonState = iota
	ButtonFocused
	ButtonPressed
	ButtonActive
	ButtonActiveFocused
	ButtonActivePressed
	ButtonDisabled

	ButtonStateCount = 7
)

var buttonStateNames = [ButtonStateCount]string{
	"normal", "focused", "pressed", "active", "activeFocused", "activePressed", "disabled",
}

func (s ButtonState) String() string {
	if int(s) < len(buttonStateNames) {
		return buttonStateNames[s]
	}
	return "unknown"
}

// buttonStateFor resolves the visual state. Disabled wins over everything,
// pressed over focused, and the active flag selects the Active* variants.
func buttonStateFor(focus FocusState, active, pressed bool) ButtonState {
	if focus == FocusDisabled {
		return ButtonDisabled
	}
	if active {
		switch {
		case pressed:
			return ButtonActivePressed
		case focus == FocusFocused:
			return ButtonActiveFocused
		}
		return ButtonActive
	}
	switch {
	case pressed:
		return ButtonPressed
	case focus == FocusFocused:
		return ButtonFocused
	}
	return ButtonNormal
}

// Button is a selectable that fires OnClick when validated or clicked.
type Button struct {
	Selectable

	Label       string
	Font        Font
	LabelAnchor Vec2
	// LabelRect places the label inside the button.
	LabelRect   AnchorRect
	LabelColors [ButtonStateCount]Color
	BackColors  [ButtonStateCount]Color

	// Sprites replaces the filled background when the index for the current
	// state is non-negative. UseColorMod tints the sprite with BackColors.
	Sprites       *SpriteSheet
	SpriteIndices [ButtonStateCount]int
	UseColorMod   bool

	// Symbol is an optional icon drawn over the background.
	Symbol      *SpriteSheet
	SymbolIndex int
	SymbolRect  AnchorRect

	// Fade is the color transition time in seconds between states.
	Fade float64

	OnClick func(b *Button)

	// onClick is the owner's hook (a list's arrow buttons), run before OnClick.
	onClick func(b *Button)

	active  bool
	pressed bool
	state   ButtonState

	labelAABB  AABB
	symbolAABB AABB
	backFade   colorFade
	labelFade  colorFade
}

// NewButton creates a button showing label. font may be nil for a button
// without text.
func NewButton(name, label string, font Font) *Button {
	b := &Button{
		Label:       label,
		Font:        font,
		LabelAnchor: AnchorCenter,
		LabelRect:   FillParent,
		SymbolIndex: -1,
		SymbolRect:  FillParent,
	}
	initSelectable(&b.Selectable, name, KindButton, b)
	b.LabelColors = [ButtonStateCount]Color{
		Gray(200), Gray(255), Gray(128), Gray(200), Gray(255), Gray(128), Gray(40),
	}
	b.BackColors = [ButtonStateCount]Color{
		Gray(50), Gray(70), Gray(25), Gray(100), Gray(120), Gray(80), Gray(20),
	}
	for i := range b.SpriteIndices {
		b.SpriteIndices[i] = -1
	}
	b.SetHandledActions(ActionValidate | ActionClick)
	return b
}

// AsButton returns the button behind e, if any.
func AsButton(e Element) (*Button, bool) {
	n := e.node()
	if n == nil || !n.Is(KindButton) {
		return nil, false
	}
	b, ok := n.hooks.(*Button)
	return b, ok
}

// State returns the visual state.
func (b *Button) State() ButtonState { return b.state }

// IsActive reports the toggle flag set with SetActive.
func (b *Button) IsActive() bool { return b.active }

// SetActive sets the toggle flag, used for checkbox-like buttons.
func (b *Button) SetActive(active bool) {
	b.active = active
	b.refreshState()
}

// IsPressed reports whether a press is being tracked.
func (b *Button) IsPressed() bool { return b.pressed }

func (b *Button) refreshState() {
	b.state = buttonStateFor(b.focusState, b.active, b.pressed)
}

// trackPress runs one frame of the press contract for whichever device
// drives the button: hold keeps the press, release after a press clicks.
func (b *Button) trackPress(down, pressed, released bool) {
	wasPressed := b.pressed
	if wasPressed {
		b.pressed = down
	} else {
		b.pressed = pressed
	}
	if wasPressed && released {
		b.click()
	}
}

func (b *Button) click() {
	if b.onClick != nil {
		b.onClick(b)
	}
	if b.OnClick != nil {
		b.OnClick(b)
	}
	b.events.emit(UIEvent{Type: EventClick, NodeID: b.ID, Name: b.Name, UserID: b.UserID})
}

// --- Hooks ---

func (b *Button) update(dt float64) {
	b.updateRect()
	b.refreshState()
	b.labelAABB = b.LabelRect.Resolve(&b.aabb)
	b.symbolAABB = b.SymbolRect.Resolve(&b.aabb)

	b.backFade.set(b.BackColors[b.state], b.Fade)
	b.labelFade.set(b.LabelColors[b.state], b.Fade)
	b.backFade.update(dt)
	b.labelFade.update(dt)
}

func (b *Button) render(rc *RenderContext) {
	r := b.ViewportRect(rc.Viewport)
	back := b.backFade.color()
	if idx := b.SpriteIndices[b.state]; b.Sprites != nil && idx >= 0 {
		tint := ColorWhite
		if b.UseColorMod {
			tint = back
		}
		rc.DrawSprite(b.Sprites, idx, r, tint)
	} else {
		rc.FillRect(r, back)
	}
	if b.Symbol != nil && b.SymbolIndex >= 0 {
		rc.DrawSprite(b.Symbol, b.SymbolIndex, rc.Viewport.ToPixels(b.symbolAABB), ColorWhite)
	}
	if b.Label != "" && b.Font != nil {
		rc.DrawText(b.Label, b.Font, rc.Viewport.ToPixels(b.labelAABB), b.LabelAnchor, b.labelFade.color())
	}
}

func (b *Button) destroy() {
	b.OnClick = nil
	b.onClick = nil
	b.OnFocusChanged = nil
	b.OnFocus = nil
}

func (b *Button) focusChanged(curr, prev FocusState) {
	if curr == FocusNormal || curr == FocusDisabled {
		b.pressed = false
	}
	b.refreshState()
}

func (b *Button) focus(in *Input) {
	if in.LastDevice == DevicePointer {
		if b.aabb.Contains(in.PointerUI) {
			b.trackPress(in.ClickDown, in.ClickPressed, in.ClickReleased)
		} else {
			b.pressed = false
		}
	} else {
		b.trackPress(in.ValidateDown, in.ValidatePressed, in.ValidateReleased)
	}
	b.refreshState()
}
