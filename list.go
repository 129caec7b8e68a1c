package canopy

// ListFlags configures list navigation.
type ListFlags uint8

const (
	// ListCycle wraps the index past either end.
	ListCycle ListFlags = 1 << iota
	// ListAutoNavigation changes the item with left/right as soon as the
	// list is focused. Without it, validate activates the list first and
	// cancel deactivates it.
	ListAutoNavigation
)

// ListState is the visual state of a list.
type ListState uint8

const (
	ListNormal ListState = iota
	ListFocused
	ListActive
	ListDisabled

	ListStateCount = 4
)

func (s ListState) String() string {
	switch s {
	case ListNormal:
		return "normal"
	case ListFocused:
		return "focused"
	case ListActive:
		return "active"
	case ListDisabled:
		return "disabled"
	}
	return "unknown"
}

func listStateFor(focus FocusState, active bool) ListState {
	switch {
	case focus == FocusDisabled:
		return ListDisabled
	case active:
		return ListActive
	case focus == FocusFocused:
		return ListFocused
	}
	return ListNormal
}

// List is a labelled value picker: a label, the selected item and a pair of
// arrow buttons that step through the items.
type List struct {
	Selectable

	Label string
	Items []string
	Font  Font
	Flags ListFlags

	LabelAnchor Vec2
	ItemAnchor  Vec2
	LabelRect   AnchorRect
	ItemRect    AnchorRect
	LabelColors [ListStateCount]Color
	ItemColors  [ListStateCount]Color
	BackColors  [ListStateCount]Color

	Sprites       *SpriteSheet
	SpriteIndices [ListStateCount]int
	UseColorMod   bool

	// Fade is the color transition time in seconds between states.
	Fade float64

	// OnItemChanged runs whenever the selected index actually changes.
	OnItemChanged func(l *List, curr, prev int, increase bool)

	prevButton *Button
	nextButton *Button

	index   int
	active  bool
	state   ListState
	hasPrev bool
	hasNext bool

	labelAABB AABB
	itemAABB  AABB
	backFade  colorFade
	labelFade colorFade
	itemFade  colorFade
}

// NewList creates a list over items. The list needs at least one item.
func NewList(name, label string, items []string, font Font, flags ListFlags) *List {
	if !precondition(len(items) > 0, "list %q needs at least one item", name) {
		items = []string{""}
	}
	l := &List{
		Label:       label,
		Items:       append([]string(nil), items...),
		Font:        font,
		Flags:       flags,
		LabelAnchor: AnchorWest,
		ItemAnchor:  AnchorCenter,
		LabelRect:   RectFromAnchors(Vec2{0, 0}, Vec2{0.5, 1}).Inset(Vec2{5, 5}),
		ItemRect:    RectFromAnchors(Vec2{0.5, 0}, Vec2{1, 1}).Inset(Vec2{5, 5}),
	}
	initSelectable(&l.Selectable, name, KindList, l)
	l.LabelColors = [ListStateCount]Color{Gray(200), Gray(255), Gray(255), Gray(128)}
	l.ItemColors = l.LabelColors
	l.BackColors = [ListStateCount]Color{Gray(50), Gray(70), Gray(80), Gray(30)}
	for i := range l.SpriteIndices {
		l.SpriteIndices[i] = -1
	}

	l.prevButton = NewButton(name+".prev", "<", font)
	l.prevButton.SetRect(RectFromAnchors(Vec2{0.5, 0}, Vec2{0.6, 1}))
	l.prevButton.onClick = func(*Button) { l.PrevItem() }
	l.prevButton.SetParent(l)

	l.nextButton = NewButton(name+".next", ">", font)
	l.nextButton.SetRect(RectFromAnchors(Vec2{0.9, 0}, Vec2{1, 1}))
	l.nextButton.onClick = func(*Button) { l.NextItem() }
	l.nextButton.SetParent(l)

	l.refreshEdges()
	l.refreshActions()
	return l
}

// AsList returns the list behind e, if any.
func AsList(e Element) (*List, bool) {
	n := e.node()
	if n == nil || !n.Is(KindList) {
		return nil, false
	}
	l, ok := n.hooks.(*List)
	return l, ok
}

// State returns the visual state.
func (l *List) State() ListState { return l.state }

// IsActive reports whether a two-phase list is currently capturing left/right.
func (l *List) IsActive() bool { return l.active }

// PrevButton and NextButton expose the arrow buttons for styling.
func (l *List) PrevButton() *Button { return l.prevButton }
func (l *List) NextButton() *Button { return l.nextButton }

// SelectedItem returns the current index.
func (l *List) SelectedItem() int { return l.index }

// SetSelectedItem jumps to index without running OnItemChanged.
func (l *List) SetSelectedItem(index int) {
	if !precondition(index >= 0 && index < len(l.Items), "list %q: item %d out of range [0, %d)", l.Name, index, len(l.Items)) {
		return
	}
	l.index = index
	l.refreshEdges()
}

// SetItemString replaces the text of one item.
func (l *List) SetItemString(index int, s string) {
	if !precondition(index >= 0 && index < len(l.Items), "list %q: item %d out of range [0, %d)", l.Name, index, len(l.Items)) {
		return
	}
	l.Items[index] = s
}

// NextItem advances the index, wrapping or clamping per Flags.
func (l *List) NextItem() { l.step(1) }

// PrevItem moves the index back, wrapping or clamping per Flags.
func (l *List) PrevItem() { l.step(-1) }

func (l *List) step(delta int) {
	n := len(l.Items)
	prev := l.index
	next := prev + delta
	if l.Flags&ListCycle != 0 {
		next = ((next % n) + n) % n
	} else {
		next = max(0, min(next, n-1))
	}
	if next == prev {
		return
	}
	l.index = next
	l.refreshEdges()
	l.itemChanged(next, prev, delta > 0)
}

func (l *List) itemChanged(curr, prev int, increase bool) {
	l.events.emit(UIEvent{
		Type:     EventItemChanged,
		NodeID:   l.ID,
		Name:     l.Name,
		UserID:   l.UserID,
		Item:     curr,
		PrevItem: prev,
		Increase: increase,
	})
	if l.OnItemChanged != nil {
		l.OnItemChanged(l, curr, prev, increase)
	}
}

// refreshEdges recomputes whether stepping is possible in each direction
// and disables the arrow buttons accordingly.
func (l *List) refreshEdges() {
	l.hasPrev, l.hasNext = true, true
	if l.Flags&ListCycle == 0 {
		l.hasPrev = l.index > 0
		l.hasNext = l.index < len(l.Items)-1
	}
	syncArrow(l.prevButton, l.hasPrev)
	syncArrow(l.nextButton, l.hasNext)
}

func syncArrow(b *Button, enabled bool) {
	switch {
	case !enabled:
		b.SetFocusState(FocusDisabled)
	case b.FocusState() == FocusDisabled:
		b.SetFocusState(FocusNormal)
	}
}

func resetArrow(b *Button, enabled bool) {
	if enabled {
		b.SetFocusState(FocusNormal)
	} else {
		b.SetFocusState(FocusDisabled)
	}
}

// refreshActions publishes the actions the list consumes. In auto-navigation
// a direction with nowhere to go is released so focus can leave the list.
func (l *List) refreshActions() {
	switch {
	case l.focusState == FocusDisabled:
		l.SetHandledActions(0)
	case l.Flags&ListAutoNavigation != 0:
		flags := ActionValidate | ActionClick
		if l.hasPrev {
			flags |= ActionLeft
		}
		if l.hasNext {
			flags |= ActionRight
		}
		l.SetHandledActions(flags)
	case l.active:
		l.SetHandledActions(ActionLeft | ActionRight | ActionCancel | ActionValidate | ActionClick)
	default:
		l.SetHandledActions(ActionValidate | ActionClick)
	}
}

// --- Hooks ---

func (l *List) update(dt float64) {
	l.updateRect()
	l.refreshEdges()
	l.state = listStateFor(l.focusState, l.active)
	l.refreshActions()
	l.labelAABB = l.LabelRect.Resolve(&l.aabb)
	l.itemAABB = l.ItemRect.Resolve(&l.aabb)

	l.backFade.set(l.BackColors[l.state], l.Fade)
	l.labelFade.set(l.LabelColors[l.state], l.Fade)
	l.itemFade.set(l.ItemColors[l.state], l.Fade)
	l.backFade.update(dt)
	l.labelFade.update(dt)
	l.itemFade.update(dt)
}

func (l *List) render(rc *RenderContext) {
	r := l.ViewportRect(rc.Viewport)
	back := l.backFade.color()
	if idx := l.SpriteIndices[l.state]; l.Sprites != nil && idx >= 0 {
		tint := ColorWhite
		if l.UseColorMod {
			tint = back
		}
		rc.DrawSprite(l.Sprites, idx, r, tint)
	} else {
		rc.FillRect(r, back)
	}
	if l.Font == nil {
		return
	}
	if l.Label != "" {
		rc.DrawText(l.Label, l.Font, rc.Viewport.ToPixels(l.labelAABB), l.LabelAnchor, l.labelFade.color())
	}
	rc.DrawText(l.Items[l.index], l.Font, rc.Viewport.ToPixels(l.itemAABB), l.ItemAnchor, l.itemFade.color())
}

func (l *List) destroy() {
	l.OnItemChanged = nil
	l.OnFocusChanged = nil
	l.OnFocus = nil
}

func (l *List) focusChanged(curr, prev FocusState) {
	if curr == FocusNormal {
		l.active = false
		resetArrow(l.prevButton, l.hasPrev)
		resetArrow(l.nextButton, l.hasNext)
	}
	l.state = listStateFor(l.focusState, l.active)
	l.refreshActions()
}

func (l *List) focus(in *Input) {
	if in.LastDevice == DevicePointer {
		l.pointerFocus(in)
	} else {
		l.navigationFocus(in)
	}
	l.Node.Update(0)
}

// pointerFocus operates the arrow buttons directly.
func (l *List) pointerFocus(in *Input) {
	arrows := [2]*Button{l.prevButton, l.nextButton}
	enabled := [2]bool{l.hasPrev, l.hasNext}
	for i, b := range arrows {
		if !enabled[i] {
			b.SetFocusState(FocusDisabled)
			continue
		}
		b.updateRect()
		if b.aabb.Contains(in.PointerUI) {
			b.SetFocusState(FocusFocused)
			b.Focus(in)
		} else {
			b.SetFocusState(FocusNormal)
		}
	}
}

func (l *List) navigationFocus(in *Input) {
	resetArrow(l.prevButton, l.hasPrev)
	resetArrow(l.nextButton, l.hasNext)

	switch {
	case l.Flags&ListAutoNavigation != 0:
		if in.Left {
			l.PrevItem()
		}
		if in.Right {
			l.NextItem()
		}
	case l.active:
		if in.Left {
			l.PrevItem()
		}
		if in.Right {
			l.NextItem()
		}
		if in.CancelPressed {
			l.active = false
		}
	case in.ValidatePressed:
		l.active = true
	}
}
