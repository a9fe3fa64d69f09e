package render

import "github.com/lixenwraith/backdrop/core"

// Buffer is a compositor backed by a flat Cell array with touched
// tracking. Effects write cells through it each frame; Flush exports the
// grid to the owning surface zero-copy.
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int

	// background applied to untouched cells at finalize
	background core.RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	b := &Buffer{
		cells:      make([]Cell, size),
		touched:    make([]bool, size),
		width:      width,
		height:     height,
		background: core.RGBBlack,
	}
	b.Clear()
	return b
}

// Width returns buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns buffer height in cells
func (b *Buffer) Height() int { return b.height }

// SetBackground sets the fill color applied to untouched cells
func (b *Buffer) SetBackground(bg core.RGB) {
	b.background = bg
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Bg: b.background}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a full cell (opaque replace)
func (b *Buffer) Set(x, y int, r rune, fg, bg core.RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
	b.touched[idx] = true
}

// SetFg writes rune and foreground while preserving existing background
func (b *Buffer) SetFg(x, y int, r rune, fg core.RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBg updates the background color while preserving rune/foreground
func (b *Buffer) SetBg(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg alpha-blends a color over the existing background
func (b *Buffer) BlendBg(x, y int, bg core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = b.cells[idx].Bg.Blend(bg, alpha)
	b.touched[idx] = true
}

// AddBg additively blends a color into the existing background
// (light accumulation for glow effects)
func (b *Buffer) AddBg(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = b.cells[idx].Bg.Add(bg)
	b.touched[idx] = true
}

// Cell returns the cell at (x, y) and whether the position is in bounds
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Snapshot returns a copy of the current cell grid, for comparisons
func (b *Buffer) Snapshot() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// finalize applies the default background to untouched cells before Flush
func (b *Buffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = b.background
		}
	}
}

// Flush writes the buffer to the surface
func (b *Buffer) Flush(s Surface) {
	b.finalize()
	s.Flush(b.cells, b.width, b.height)
}
