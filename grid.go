package canopy

// DefaultGridCapacity is the number of cells a grid accepts.
const DefaultGridCapacity = 64

// GridCell places one element in a grid.
type GridCell struct {
	Element          *Node
	Row, Column      int
	RowSpan, ColSpan int
}

// GridLayout arranges elements in rows and columns. Positive sizes are fixed
// in UI units; zero or negative sizes are stretch weights sharing the space
// left after fixed sizes, spacings and padding. Rows run top to bottom.
type GridLayout struct {
	Node

	rows, cols int

	padding Vec2
	anchor  Vec2

	rowSizes, colSizes       []float64
	rowSpacings, colSpacings []float64
	rowOffsets, colOffsets   []float64
	gridOffset               Vec2

	cells    []GridCell
	capacity int
}

// NewGridLayout creates a grid where every row and column stretches equally.
func NewGridLayout(name string, rows, cols int) *GridLayout {
	rows, cols = max(rows, 1), max(cols, 1)
	g := &GridLayout{
		rows:        rows,
		cols:        cols,
		anchor:      AnchorCenter,
		rowSizes:    make([]float64, rows),
		colSizes:    make([]float64, cols),
		rowSpacings: make([]float64, rows),
		colSpacings: make([]float64, cols),
		rowOffsets:  make([]float64, rows+1),
		colOffsets:  make([]float64, cols+1),
		capacity:    DefaultGridCapacity,
	}
	nodeDefaults(&g.Node, name, KindGrid)
	g.Node.hooks = g
	for i := range g.rowSizes {
		g.rowSizes[i] = -1
	}
	for i := range g.colSizes {
		g.colSizes[i] = -1
	}
	return g
}

// AsGrid returns the grid behind e, if any.
func AsGrid(e Element) (*GridLayout, bool) {
	n := e.node()
	if n == nil || !n.Is(KindGrid) {
		return nil, false
	}
	g, ok := n.hooks.(*GridLayout)
	return g, ok
}

// Rows returns the row count.
func (g *GridLayout) Rows() int { return g.rows }

// Columns returns the column count.
func (g *GridLayout) Columns() int { return g.cols }

// Cells returns the placed cells. The returned slice MUST NOT be mutated.
func (g *GridLayout) Cells() []GridCell { return g.cells }

// Add places e at (row, col), spanning rowSpan rows and colSpan columns.
// Spans are clamped into the grid. Adding an element that is already placed
// moves it. The element is reparented to the grid and the layout is
// recomputed at once.
func (g *GridLayout) Add(e Element, row, col, rowSpan, colSpan int) error {
	n := e.node()
	if !precondition(n != nil, "grid %q: cannot add nil element", g.Name) {
		return ErrOutOfRange
	}
	if !precondition(row >= 0 && row < g.rows && col >= 0 && col < g.cols,
		"grid %q: cell (%d, %d) outside %dx%d", g.Name, row, col, g.rows, g.cols) {
		return ErrOutOfRange
	}
	rowSpan = max(1, min(rowSpan, g.rows-row))
	colSpan = max(1, min(colSpan, g.cols-col))

	idx := g.findCell(n)
	if idx < 0 {
		g.dropDetached()
		if len(g.cells) >= g.capacity {
			warnf("grid %q is full (%d cells), %q not added", g.Name, g.capacity, n.Name)
			return ErrCapacity
		}
		g.cells = append(g.cells, GridCell{})
		idx = len(g.cells) - 1
	}
	g.cells[idx] = GridCell{Element: n, Row: row, Column: col, RowSpan: rowSpan, ColSpan: colSpan}

	n.SetParent(g)
	g.update(0)
	return nil
}

// dropDetached removes cells whose element was destroyed or moved to
// another parent.
func (g *GridLayout) dropDetached() {
	kept := g.cells[:0]
	for _, c := range g.cells {
		if c.Element.Parent == &g.Node && !c.Element.disposed {
			kept = append(kept, c)
		}
	}
	clear(g.cells[len(kept):])
	g.cells = kept
}

func (g *GridLayout) findCell(n *Node) int {
	for i := range g.cells {
		if g.cells[i].Element == n {
			return i
		}
	}
	return -1
}

// --- Sizes and spacings ---

// SetRowSize sets one row's size: positive is fixed, otherwise a stretch weight.
func (g *GridLayout) SetRowSize(index int, size float64) {
	if precondition(index >= 0 && index < g.rows, "grid %q: row %d out of range", g.Name, index) {
		g.rowSizes[index] = size
	}
}

// SetColumnSize sets one column's size: positive is fixed, otherwise a stretch weight.
func (g *GridLayout) SetColumnSize(index int, size float64) {
	if precondition(index >= 0 && index < g.cols, "grid %q: column %d out of range", g.Name, index) {
		g.colSizes[index] = size
	}
}

// SetRowSizes sets every row to size.
func (g *GridLayout) SetRowSizes(size float64) {
	for i := range g.rowSizes {
		g.rowSizes[i] = size
	}
}

// SetColumnSizes sets every column to size.
func (g *GridLayout) SetColumnSizes(size float64) {
	for i := range g.colSizes {
		g.colSizes[i] = size
	}
}

// SetRowSpacing sets the gap below row index. The last row has no gap.
func (g *GridLayout) SetRowSpacing(index int, spacing float64) {
	if precondition(index >= 0 && index < g.rows-1, "grid %q: row spacing %d out of range", g.Name, index) {
		g.rowSpacings[index] = spacing
	}
}

// SetColumnSpacing sets the gap right of column index. The last column has no gap.
func (g *GridLayout) SetColumnSpacing(index int, spacing float64) {
	if precondition(index >= 0 && index < g.cols-1, "grid %q: column spacing %d out of range", g.Name, index) {
		g.colSpacings[index] = spacing
	}
}

// SetRowSpacings sets the gap between every pair of adjacent rows.
func (g *GridLayout) SetRowSpacings(spacing float64) {
	setSpacings(g.rowSpacings, spacing)
}

// SetColumnSpacings sets the gap between every pair of adjacent columns.
func (g *GridLayout) SetColumnSpacings(spacing float64) {
	setSpacings(g.colSpacings, spacing)
}

func setSpacings(s []float64, spacing float64) {
	for i := range s {
		s[i] = spacing
	}
	s[len(s)-1] = 0
}

// SetPadding sets the margin kept free on each side of the grid.
func (g *GridLayout) SetPadding(p Vec2) { g.padding = p }

// Padding returns the margin on each side.
func (g *GridLayout) Padding() Vec2 { return g.padding }

// SetAnchor places the grid block inside the padded area when it does not
// fill it: (0, 1) is top-left, (0.5, 0.5) centered.
func (g *GridLayout) SetAnchor(a Vec2) { g.anchor = a }

// Anchor returns the block placement.
func (g *GridLayout) Anchor() Vec2 { return g.anchor }

// MinimumSize returns the room taken by fixed sizes, spacings and padding.
// Stretch rows and columns contribute nothing.
func (g *GridLayout) MinimumSize() Vec2 {
	fixed, _ := g.footprint()
	return fixed
}

// footprint returns the fixed extent and the sum of the stretch weights
// (zero or negative) on each axis.
func (g *GridLayout) footprint() (fixed, stretch Vec2) {
	fixed = g.padding.Scale(2)
	for i := range g.colSizes {
		fixed.X += g.colSpacings[i]
		if s := g.colSizes[i]; s > 0 {
			fixed.X += s
		} else {
			stretch.X += s
		}
	}
	for i := range g.rowSizes {
		fixed.Y += g.rowSpacings[i]
		if s := g.rowSizes[i]; s > 0 {
			fixed.Y += s
		} else {
			stretch.Y += s
		}
	}
	return fixed, stretch
}

// updateOffsets fills the cumulative row and column offsets, trailing
// spacing included.
func (g *GridLayout) updateOffsets() {
	fixed, stretch := g.footprint()
	unit := g.aabb.Size().Sub(fixed)
	if stretch.X < 0 {
		unit.X /= stretch.X
	}
	if stretch.Y < 0 {
		unit.Y /= stretch.Y
	}
	accumulate(g.rowOffsets, g.rowSizes, g.rowSpacings, unit.Y)
	accumulate(g.colOffsets, g.colSizes, g.colSpacings, unit.X)
}

func accumulate(offsets, sizes, spacings []float64, unit float64) {
	offsets[0] = 0
	for i, s := range sizes {
		if s <= 0 {
			s *= unit
		}
		offsets[i+1] = offsets[i] + spacings[i] + s
	}
}

// --- Hooks ---

func (g *GridLayout) update(dt float64) {
	g.updateRect()
	g.updateOffsets()

	block := Vec2{g.colOffsets[g.cols], g.rowOffsets[g.rows]}
	avail := g.aabb.Size().Sub(g.padding.Scale(2))
	g.gridOffset = Vec2{
		X: g.padding.X + g.anchor.X*(avail.X-block.X),
		Y: g.padding.Y + (g.anchor.Y-1)*(avail.Y-block.Y) + avail.Y,
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.Element.Parent != &g.Node {
			continue
		}
		c.Element.Rect = g.cellRect(c.Row, c.Column, c.RowSpan, c.ColSpan)
	}
}

// cellRect returns the zero-anchored rect covering the given cell range.
func (g *GridLayout) cellRect(row, col, rowSpan, colSpan int) AnchorRect {
	lastRow, lastCol := row+rowSpan, col+colSpan
	o := g.gridOffset
	return AnchorRect{
		OffsetMin: Vec2{
			X: o.X + g.colOffsets[col],
			Y: o.Y - (g.rowOffsets[lastRow] - g.rowSpacings[lastRow-1]),
		},
		OffsetMax: Vec2{
			X: o.X + g.colOffsets[lastCol] - g.colSpacings[lastCol-1],
			Y: o.Y - g.rowOffsets[row],
		},
	}
}

func (g *GridLayout) render(rc *RenderContext) {
	if !rc.Gizmos {
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			box := g.cellRect(r, c, 1, 1).Resolve(&g.aabb)
			rc.StrokeRect(rc.Viewport.ToPixels(box), gizmoColor)
		}
	}
}

func (g *GridLayout) destroy() {
	g.cells = nil
}
