package core

import "math"

// Canvas is the drawing surface handed to games. All coordinates are
// logical pixels of the game's own playfield (for example 600x600 for
// snake), independent of the terminal size.
type Canvas interface {
	Clear(c Color)
	FillRect(r RectF, c Color)
	FillCircle(center Vec, radius float64, c Color)
	// FillText draws text centered horizontally on at.
	FillText(text string, at Vec, c Color)
}

// Glyphs used when projecting shapes onto character cells.
const (
	GlyphBlock  = '█'
	GlyphCircle = '●'
)

// Minimum projected playfield, in cells.
const (
	minCanvasCols = 8
	minCanvasRows = 4
)

// ScreenCanvas projects a logical playfield onto a region of a Screen.
// One cell is k logical pixels wide and 2k tall, matching the usual 1:2
// aspect of terminal cells.
type ScreenCanvas struct {
	screen  *Screen
	region  Rect // projected playfield on the screen
	logical RectF
	k       float64
}

// NewScreenCanvas fits a w x h logical playfield inside avail.
// It returns ErrMissingSurface when the area is too small to draw anything
// meaningful.
func NewScreenCanvas(s *Screen, avail Rect, w, h float64) (*ScreenCanvas, error) {
	if s == nil || w <= 0 || h <= 0 || avail.W < minCanvasCols || avail.H < minCanvasRows {
		return nil, ErrMissingSurface
	}
	k := math.Max(w/float64(avail.W), h/(2*float64(avail.H)))
	cols := int(math.Ceil(w / k))
	rows := int(math.Ceil(h / (2 * k)))
	cols = min(cols, avail.W)
	rows = min(rows, avail.H)

	region := Rect{
		X: avail.X + (avail.W-cols)/2,
		Y: avail.Y + (avail.H-rows)/2,
		W: cols,
		H: rows,
	}
	return &ScreenCanvas{
		screen:  s,
		region:  region,
		logical: RectF{W: w, H: h},
		k:       k,
	}, nil
}

// cellCenter returns the logical coordinates of a region cell's center.
func (c *ScreenCanvas) cellCenter(col, row int) Vec {
	return Vec{
		X: (float64(col) + 0.5) * c.k,
		Y: (float64(row) + 0.5) * 2 * c.k,
	}
}

// cellAt returns the region cell containing a logical point.
func (c *ScreenCanvas) cellAt(p Vec) (int, int) {
	return int(math.Floor(p.X / c.k)), int(math.Floor(p.Y / (2 * c.k)))
}

func (c *ScreenCanvas) plot(col, row int, r rune, color Color) {
	if col < 0 || col >= c.region.W || row < 0 || row >= c.region.H {
		return
	}
	c.screen.SetColor(c.region.X+col, c.region.Y+row, r, color)
}

// Clear blanks the playfield region.
func (c *ScreenCanvas) Clear(color Color) {
	for row := 0; row < c.region.H; row++ {
		for col := 0; col < c.region.W; col++ {
			c.plot(col, row, ' ', color)
		}
	}
}

// FillRect fills every cell whose center lies inside r. Rectangles smaller
// than a cell still mark the cell holding their center.
func (c *ScreenCanvas) FillRect(r RectF, color Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c0, r0 := c.cellAt(Vec{X: r.X, Y: r.Y})
	c1, r1 := c.cellAt(Vec{X: r.Right(), Y: r.Bottom()})
	drawn := false
	for row := max(r0, 0); row <= min(r1, c.region.H-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.region.W-1); col++ {
			p := c.cellCenter(col, row)
			if p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom() {
				c.plot(col, row, GlyphBlock, color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := c.cellAt(Vec{X: r.X + r.W/2, Y: r.Y + r.H/2})
		c.plot(col, row, GlyphBlock, color)
	}
}

// FillCircle fills the cells whose center lies within radius.
func (c *ScreenCanvas) FillCircle(center Vec, radius float64, color Color) {
	c0, r0 := c.cellAt(Vec{X: center.X - radius, Y: center.Y - radius})
	c1, r1 := c.cellAt(Vec{X: center.X + radius, Y: center.Y + radius})
	drawn := false
	for row := max(r0, 0); row <= min(r1, c.region.H-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.region.W-1); col++ {
			p := c.cellCenter(col, row)
			dx, dy := p.X-center.X, p.Y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				c.plot(col, row, GlyphBlock, color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := c.cellAt(center)
		c.plot(col, row, GlyphCircle, color)
	}
}

// FillText writes text centered horizontally on at.
func (c *ScreenCanvas) FillText(text string, at Vec, color Color) {
	col, row := c.cellAt(at)
	runes := []rune(text)
	start := col - len(runes)/2
	for i, r := range runes {
		c.plot(start+i, row, r, color)
	}
}

// Unproject converts a screen position to logical playfield coordinates.
// ok is false when the position lies outside the playfield.
func (c *ScreenCanvas) Unproject(x, y int) (Vec, bool) {
	if !c.region.Contains(x, y) {
		return Vec{}, false
	}
	return c.cellCenter(x-c.region.X, y-c.region.Y), true
}

// DrawOp is one recorded Canvas call.
type DrawOp struct {
	Kind   string // "clear", "rect", "circle" or "text"
	Rect   RectF
	Center Vec
	Radius float64
	Text   string
	Color  Color
}

// Recorder is a Canvas that remembers every call. Used by tests.
type Recorder struct {
	Ops []DrawOp
}

func (r *Recorder) Clear(c Color) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, DrawOp{Kind: "clear", Color: c})
}

func (r *Recorder) FillRect(rect RectF, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "rect", Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(center Vec, radius float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "circle", Center: center, Radius: radius, Color: c})
}

func (r *Recorder) FillText(text string, at Vec, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", Text: text, Center: at, Color: c})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns all recorded text strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}
