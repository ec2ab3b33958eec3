package core

import "image/color"

// Op identifies a draw command.
type Op int

const (
	OpFill   Op = iota // Clear the whole surface to Color
	OpLine             // Line from (X, Y) to (X2, Y2)
	OpRect             // Filled rectangle at (X, Y) sized W×H
	OpCircle           // Filled circle centered at (X, Y) with Radius
	OpText             // Text with its top-left at (X, Y)
)

// Layer tags what a command depicts, so frontends that cannot draw pixels
// (the terminal) can still pick a glyph for it.
type Layer int

const (
	LayerBackground Layer = iota
	LayerGrid
	LayerPit
	LayerHazard
	LayerGold
	LayerPlayer
	LayerText
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerGrid:
		return "grid"
	case LayerPit:
		return "pit"
	case LayerHazard:
		return "hazard"
	case LayerGold:
		return "gold"
	case LayerPlayer:
		return "player"
	case LayerText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one draw instruction on the logical SurfaceW×SurfaceH surface.
type Command struct {
	Op     Op
	Layer  Layer
	X, Y   int
	X2, Y2 int
	W, H   int
	Radius int
	Color  color.RGBA
	Text   string
}

// DrawList is an ordered list of draw commands. Later commands paint over
// earlier ones.
type DrawList []Command

// Fill appends a full-surface fill.
func (d *DrawList) Fill(c color.RGBA) {
	*d = append(*d, Command{Op: OpFill, Layer: LayerBackground, W: SurfaceW, H: SurfaceH, Color: c})
}

// Line appends a line segment.
func (d *DrawList) Line(l Layer, x1, y1, x2, y2 int, c color.RGBA) {
	*d = append(*d, Command{Op: OpLine, Layer: l, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

// Rect appends a filled rectangle.
func (d *DrawList) Rect(l Layer, r Rect, c color.RGBA) {
	*d = append(*d, Command{Op: OpRect, Layer: l, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c})
}

// Circle appends a filled circle.
func (d *DrawList) Circle(l Layer, cx, cy, radius int, c color.RGBA) {
	*d = append(*d, Command{Op: OpCircle, Layer: l, X: cx, Y: cy, Radius: radius, Color: c})
}

// Text appends a line of text.
func (d *DrawList) Text(x, y int, s string, c color.RGBA) {
	*d = append(*d, Command{Op: OpText, Layer: LayerText, X: x, Y: y, Text: s, Color: c})
}

// Layers returns the layer of every command in order. Handy for tests that
// only care about paint order.
func (d DrawList) Layers() []Layer {
	out := make([]Layer, len(d))
	for i, c := range d {
		out[i] = c.Layer
	}
	return out
}
