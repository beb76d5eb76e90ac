package core

// Canvas is a double-buffered drawing surface.
// Draws between Begin and Commit land in a back buffer, so a viewer only ever
// sees complete frames through Front.
type Canvas struct {
	front   *Raster
	back    *Raster
	open    bool
	commits uint64
}

// NewCanvas creates a canvas with two rasters of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		front: NewRaster(width, height),
		back:  NewRaster(width, height),
	}
}

// Begin starts a frame with a cleared back buffer.
func (c *Canvas) Begin() {
	c.back.Clear()
	c.open = true
}

// Commit publishes the back buffer. Without a preceding Begin it does nothing.
func (c *Canvas) Commit() {
	if !c.open {
		return
	}
	c.front, c.back = c.back, c.front
	c.open = false
	c.commits++
}

// Rollback discards everything drawn since Begin.
func (c *Canvas) Rollback() {
	c.back.Clear()
	c.open = false
}

// Front returns the most recently committed frame.
func (c *Canvas) Front() *Raster {
	return c.front
}

// Commits returns how many frames have been published.
func (c *Canvas) Commits() uint64 {
	return c.commits
}

// target returns the raster draws should go to, or nil outside a frame.
func (c *Canvas) target() *Raster {
	if !c.open {
		return nil
	}
	return c.back
}

// DrawDisc draws a filled circle.
func (c *Canvas) DrawDisc(x, y, r Coord) {
	if t := c.target(); t != nil {
		t.DrawDisc(int(x), int(y), int(r))
	}
}

// DrawCircle draws a circle outline.
func (c *Canvas) DrawCircle(x, y, r Coord) {
	if t := c.target(); t != nil {
		t.DrawCircle(int(x), int(y), int(r))
	}
}

// DrawBox draws a filled rectangle.
func (c *Canvas) DrawBox(x, y, w, h Coord) {
	if t := c.target(); t != nil {
		t.DrawBox(NewRect(int(x), int(y), int(w), int(h)))
	}
}

// DrawFrame draws a rectangle outline.
func (c *Canvas) DrawFrame(x, y, w, h Coord) {
	if t := c.target(); t != nil {
		t.DrawFrame(NewRect(int(x), int(y), int(w), int(h)))
	}
}

// DrawStr places short text at a fixed position.
func (c *Canvas) DrawStr(x, y Coord, s string) {
	if t := c.target(); t != nil {
		t.DrawStr(int(x), int(y), s)
	}
}
