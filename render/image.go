package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Default pixel footprint of one cell before scaling, approximating a
// terminal glyph's aspect ratio
const (
	baseCellWidth  = 8
	baseCellHeight = 16
)

// ImageSurface renders cells into an offscreen RGBA image, used for
// settings-screen preview thumbnails. The scale factor models the host
// display's pixel density and is re-derived on demand without touching
// any effect state.
type ImageSurface struct {
	cols, rows int
	scale      float64
	cellW      int
	cellH      int
	img        *image.RGBA
}

// NewImageSurface creates an offscreen surface of cols×rows cells at the
// given display scale factor. Non-positive dimensions yield nil, which
// Mount treats as a disabled effect.
func NewImageSurface(cols, rows int, scale float64) *ImageSurface {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	s := &ImageSurface{cols: cols, rows: rows}
	s.SetScale(scale)
	return s
}

// Size returns the surface dimensions in cells
func (s *ImageSurface) Size() (int, int) {
	return s.cols, s.rows
}

// SetScale re-derives the pixel geometry for a new display scale factor.
// Cell dimensions are geometry only; entity state lives in the renderer
// and is unaffected.
func (s *ImageSurface) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
	s.cellW = int(baseCellWidth * scale)
	s.cellH = int(baseCellHeight * scale)
	if s.cellW < 1 {
		s.cellW = 1
	}
	if s.cellH < 1 {
		s.cellH = 1
	}
	s.img = image.NewRGBA(image.Rect(0, 0, s.cols*s.cellW, s.rows*s.cellH))
}

// Scale returns the current display scale factor
func (s *ImageSurface) Scale() float64 {
	return s.scale
}

// Flush rasterizes the cell grid: background fills each cell rectangle,
// cells carrying a rune get their foreground blended in as a filled
// block (thumbnails are far too small for legible glyphs)
func (s *ImageSurface) Flush(cells []Cell, w, h int) {
	stride := w
	if s.cols < w {
		w = s.cols
	}
	if s.rows < h {
		h = s.rows
	}
	for y := 0; y < h; y++ {
		row := cells[y*stride:]
		for x := 0; x < w; x++ {
			c := row[x]
			fill := c.Bg
			if c.Rune != 0 && c.Rune != ' ' {
				fill = c.Bg.Blend(c.Fg, 0.6)
			}
			s.fillCell(x, y, color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 255})
		}
	}
}

func (s *ImageSurface) fillCell(cx, cy int, c color.RGBA) {
	x0 := cx * s.cellW
	y0 := cy * s.cellH
	for py := y0; py < y0+s.cellH; py++ {
		for px := x0; px < x0+s.cellW; px++ {
			s.img.SetRGBA(px, py, c)
		}
	}
}

// RGBA returns the backing image at native resolution
func (s *ImageSurface) RGBA() *image.RGBA {
	return s.img
}

// Export resamples the rendered frame to the requested pixel size, for
// thumbnail output
func (s *ImageSurface) Export(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.img, s.img.Bounds(), xdraw.Over, nil)
	return dst
}
