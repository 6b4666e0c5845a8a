package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille rendering for the circular visualization modes. Each rune is
// a 2x4 dot cell, so a canvas of C columns by R rows addresses a grid
// of 2C x 4R dots. Unicode braille starts at U+2800 with one bit per
// dot.
const brailleBase = '⠀'

// brailleDots maps (subRow, subCol) to the bit offset of that dot.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// canvas layers: dots drawn at a higher layer take that layer's color
// for the whole cell.
const (
	layerDim = iota + 1
	layerValue
	layerNeedle
)

type brailleCanvas struct {
	cols, rows int
	cells      []rune
	layers     []uint8
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	c := &brailleCanvas{
		cols:   cols,
		rows:   rows,
		cells:  make([]rune, cols*rows),
		layers: make([]uint8, cols*rows),
	}
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
	return c
}

// setDot lights the dot at (x, y) in dot coordinates, top-left origin.
func (c *brailleCanvas) setDot(x, y int, layer uint8) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	idx := (y/4)*c.cols + x/2
	c.cells[idx] |= rune(1 << brailleDots[y%4][x%2])
	if layer > c.layers[idx] {
		c.layers[idx] = layer
	}
}

// plotEllipseArc draws the arc of an axis-aligned ellipse between two
// angles (radians, increasing clockwise in screen space).
func (c *brailleCanvas) plotEllipseArc(cx, cy, rx, ry, from, to float64, layer uint8) {
	if to < from {
		return
	}
	// Step fine enough that adjacent dots touch on the outer radius.
	steps := int(math.Ceil((to - from) * math.Max(rx, ry) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/float64(steps)
		x := cx + math.Cos(a)*rx
		y := cy + math.Sin(a)*ry
		c.setDot(int(math.Round(x)), int(math.Round(y)), layer)
	}
}

// plotLine draws a straight dot line from (x0, y0) to (x1, y1).
func (c *brailleCanvas) plotLine(x0, y0, x1, y1 float64, layer uint8) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))) * 2
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.setDot(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), layer)
	}
}

// render colors each cell by its topmost layer and joins rows.
func (c *brailleCanvas) render(dim, value, needle lipgloss.Style) []string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		for col := 0; col < c.cols; col++ {
			idx := row*c.cols + col
			ch := string(c.cells[idx])
			switch c.layers[idx] {
			case layerNeedle:
				b.WriteString(needle.Render(ch))
			case layerValue:
				b.WriteString(value.Render(ch))
			case layerDim:
				b.WriteString(dim.Render(ch))
			default:
				b.WriteString(" ")
			}
		}
		lines[row] = b.String()
	}
	return lines
}
