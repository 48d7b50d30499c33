package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"glide-snake/game/types"
)

// cellAspect is how many painter pixels one cell spans vertically. Terminal
// cells are roughly twice as tall as wide.
const cellAspect = 2

// Painter rasterizes the simulation's circles and rectangles onto terminal
// cells. One cell is one pixel wide and cellAspect pixels tall; a cell is
// filled when its center lies inside the shape.
type Painter struct {
	screen tcell.Screen
	cols   int
	rows   int
	bg     []types.Color // last fill color per cell, for text backgrounds
}

func NewPainter(s tcell.Screen) *Painter {
	p := &Painter{screen: s}
	p.UpdateDimensions()
	return p
}

// UpdateDimensions picks up terminal resizes; call once per frame.
func (p *Painter) UpdateDimensions() {
	p.cols, p.rows = p.screen.Size()
	if n := p.cols * p.rows; len(p.bg) != n {
		p.bg = make([]types.Color, n)
	}
}

func (p *Painter) Size() (float64, float64) {
	return float64(p.cols), float64(p.rows * cellAspect)
}

func (p *Painter) Clear(c types.Color) {
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			p.fill(x, y, c)
		}
	}
}

func (p *Painter) FillCircle(cx, cy, radius float64, c types.Color) {
	// Shapes smaller than a cell would vanish; keep them visible as one cell.
	if radius < 0.5 {
		p.fillPixel(cx, cy, c)
		return
	}
	x0, x1 := p.colSpan(cx-radius, cx+radius)
	y0, y1 := p.rowSpan(cy-radius, cy+radius)
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		py := (float64(y) + 0.5) * cellAspect
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			if dx, dy := px-cx, py-cy; dx*dx+dy*dy <= r2 {
				p.fill(x, y, c)
			}
		}
	}
}

func (p *Painter) FillRect(x, y, width, height float64, c types.Color) {
	x0, x1 := p.colSpan(x, x+width)
	y0, y1 := p.rowSpan(y, y+height)
	for row := y0; row <= y1; row++ {
		py := (float64(row) + 0.5) * cellAspect
		if py < y || py >= y+height {
			continue
		}
		for col := x0; col <= x1; col++ {
			px := float64(col) + 0.5
			if px >= x && px < x+width {
				p.fill(col, row, c)
			}
		}
	}
}

// Text writes s starting at the cell containing (x, y). Font size is ignored.
func (p *Painter) Text(s string, x, y, _ float64, c types.Color) {
	col := int(math.Floor(x))
	row := int(math.Floor(y / cellAspect))
	if row < 0 || row >= p.rows {
		return
	}
	for _, r := range s {
		if col >= 0 && col < p.cols {
			st := tcell.StyleDefault.
				Foreground(toTcell(c)).
				Background(toTcell(p.bg[row*p.cols+col]))
			p.screen.SetContent(col, row, r, nil, st)
		}
		col++
	}
}

func (p *Painter) fillPixel(x, y float64, c types.Color) {
	col := int(math.Floor(x))
	row := int(math.Floor(y / cellAspect))
	if col >= 0 && col < p.cols && row >= 0 && row < p.rows {
		p.fill(col, row, c)
	}
}

func (p *Painter) fill(col, row int, c types.Color) {
	p.bg[row*p.cols+col] = c
	p.screen.SetContent(col, row, ' ', nil, cellStyle(c))
}

func (p *Painter) colSpan(lo, hi float64) (int, int) {
	return clamp(int(math.Floor(lo)), 0, p.cols-1), clamp(int(math.Ceil(hi)), 0, p.cols-1)
}

func (p *Painter) rowSpan(lo, hi float64) (int, int) {
	return clamp(int(math.Floor(lo/cellAspect)), 0, p.rows-1), clamp(int(math.Ceil(hi/cellAspect)), 0, p.rows-1)
}

func cellStyle(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(toTcell(c))
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
