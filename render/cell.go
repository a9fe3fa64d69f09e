package render

import "github.com/lixenwraith/backdrop/core"

// Attr holds per-cell display attributes
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1
	AttrDim  Attr = 2
)

// Cell is one character cell of the drawing surface
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Bg    core.RGB
	Attrs Attr
}

// Surface is a drawing target sized to its container. The buffer
// composites frames and hands the finished cell grid to the surface in
// one Flush; a surface is exclusively owned by its instance, there are
// no concurrent writers.
type Surface interface {
	Size() (int, int)
	Flush(cells []Cell, w, h int)
}
