package core

import (
	"slices"
	"strings"
)

// Text is a short string placed on the raster at a fixed position.
// Glyphs are not rasterised; the platform overlays the runes when it renders.
type Text struct {
	X, Y int // Baseline-left position in pixels
	S    string
}

// Raster is a monochrome pixel buffer for the playfield.
// It decouples game drawing from the terminal: the simulation draws shapes
// in pixels while the platform decides how pixels become characters.
type Raster struct {
	width  int
	height int
	pix    []bool
	texts  []Text
}

// NewRaster creates a cleared raster with the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Clear turns every pixel off and drops all text.
func (r *Raster) Clear() {
	clear(r.pix)
	r.texts = r.texts[:0]
}

// Set turns on the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (r *Raster) Set(x, y int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.pix[y*r.width+x] = true
}

// Pixel reports whether the pixel at (x, y) is on.
// Returns false for out-of-bounds coordinates.
func (r *Raster) Pixel(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	return r.pix[y*r.width+x]
}

// Lit returns the number of pixels that are on.
func (r *Raster) Lit() int {
	n := 0
	for _, p := range r.pix {
		if p {
			n++
		}
	}
	return n
}

// Texts returns a copy of the text placed on the raster, in draw order.
// Later draws and Clear do not change it.
func (r *Raster) Texts() []Text {
	return slices.Clone(r.texts)
}

// DrawBox fills a rectangle.
func (r *Raster) DrawBox(rect Rect) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.Set(x, y)
		}
	}
}

// DrawFrame draws the outline of a rectangle.
func (r *Raster) DrawFrame(rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	r.DrawHLine(rect.X, rect.Y, rect.W)
	r.DrawHLine(rect.X, rect.Bottom()-1, rect.W)
	r.DrawVLine(rect.X, rect.Y, rect.H)
	r.DrawVLine(rect.Right()-1, rect.Y, rect.H)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (r *Raster) DrawHLine(x, y, length int) {
	for i := 0; i < length; i++ {
		r.Set(x+i, y)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (r *Raster) DrawVLine(x, y, length int) {
	for i := 0; i < length; i++ {
		r.Set(x, y+i)
	}
}

// DrawDisc fills a circle of radius rad centred on (cx, cy).
func (r *Raster) DrawDisc(cx, cy, rad int) {
	if rad < 0 {
		return
	}
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rad*rad {
				r.Set(cx+dx, cy+dy)
			}
		}
	}
}

// DrawCircle draws the outline of a circle using the midpoint algorithm.
func (r *Raster) DrawCircle(cx, cy, rad int) {
	if rad < 0 {
		return
	}
	x, y := rad, 0
	d := 1 - rad
	for x >= y {
		r.Set(cx+x, cy+y)
		r.Set(cx+y, cy+x)
		r.Set(cx-y, cy+x)
		r.Set(cx-x, cy+y)
		r.Set(cx-x, cy-y)
		r.Set(cx-y, cy-x)
		r.Set(cx+y, cy-x)
		r.Set(cx+x, cy-y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawStr places text with its baseline-left corner at (x, y).
func (r *Raster) DrawStr(x, y int, s string) {
	r.texts = append(r.texts, Text{X: x, Y: y, S: s})
}

// String dumps the raster as text, '#' for lit pixels and '.' otherwise.
// Text overlays are not included. Used for screenshots and tests.
func (r *Raster) String() string {
	var sb strings.Builder
	sb.Grow(r.width*r.height + r.height)

	for y := 0; y < r.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < r.width; x++ {
			if r.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Braille cell geometry: each terminal character covers 2x4 pixels.
const (
	BrailleCellW = 2
	BrailleCellH = 4
)

// brailleDots maps a pixel offset inside a cell to its Unicode dot bit.
var brailleDots = [BrailleCellH][BrailleCellW]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille converts the raster to rows of Unicode braille characters.
// Empty cells become spaces and text overlays replace the cells they cover.
func (r *Raster) Braille() [][]rune {
	cols := (r.width + BrailleCellW - 1) / BrailleCellW
	rows := (r.height + BrailleCellH - 1) / BrailleCellH

	cells := make([][]rune, rows)
	for cy := range cells {
		cells[cy] = make([]rune, cols)
		for cx := range cells[cy] {
			var bits rune
			for dy := 0; dy < BrailleCellH; dy++ {
				for dx := 0; dx < BrailleCellW; dx++ {
					if r.Pixel(cx*BrailleCellW+dx, cy*BrailleCellH+dy) {
						bits |= brailleDots[dy][dx]
					}
				}
			}
			if bits == 0 {
				cells[cy][cx] = ' '
			} else {
				cells[cy][cx] = 0x2800 + bits
			}
		}
	}

	// Text sits on its baseline, so it occupies the cell row above it.
	for _, t := range r.texts {
		row := Clamp(t.Y/BrailleCellH-1, 0, rows-1)
		col := t.X / BrailleCellW
		for i, ch := range []rune(t.S) {
			if col+i >= 0 && col+i < cols && rows > 0 {
				cells[row][col+i] = ch
			}
		}
	}
	return cells
}
