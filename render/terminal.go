package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalSurface adapts a tcell screen to the Surface interface.
// The demo shell renders effects fullscreen through it.
type TerminalSurface struct {
	screen tcell.Screen
}

// NewTerminalSurface wraps an initialized tcell screen. A nil screen
// yields a nil surface, which Mount treats as a disabled effect.
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	if screen == nil {
		return nil
	}
	return &TerminalSurface{screen: screen}
}

// Size returns the screen dimensions in cells
func (s *TerminalSurface) Size() (int, int) {
	return s.screen.Size()
}

// Flush writes the cell grid to the terminal and shows it
func (s *TerminalSurface) Flush(cells []Cell, w, h int) {
	stride := w
	sw, sh := s.screen.Size()
	if sw < w {
		w = sw
	}
	if sh < h {
		h = sh
	}
	for y := 0; y < h; y++ {
		row := cells[y*stride:]
		for x := 0; x < w; x++ {
			c := row[x]
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			if c.Attrs&AttrBold != 0 {
				st = st.Bold(true)
			}
			if c.Attrs&AttrDim != 0 {
				st = st.Dim(true)
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, st)
		}
	}
	s.screen.Show()
}
