// Package core provides fundamental types and utilities shared by the game and
// its frontends. It contains no external dependencies (especially no Bubble Tea
// or ebiten) to keep game logic pure and testable.
package core

import "fmt"

// Board dimensions. The board is a fixed square; nothing resizes it.
const (
	Rows     = 10
	Cols     = 10
	TileSize = 60 // Logical pixels per tile edge

	SurfaceW = Cols * TileSize
	SurfaceH = Rows * TileSize
)

// Cell is a grid coordinate. Row grows downward, Col grows to the right.
type Cell struct {
	Row, Col int
}

// Origin is the player's start cell and the win cell.
var Origin = Cell{}

// boardCells is the board in cell units, x = Col and y = Row.
var boardCells = NewRect(0, 0, Cols, Rows)

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the cell lies on the board.
func (c Cell) InBounds() bool {
	return boardCells.Contains(c.Col, c.Row)
}

// Step returns the neighbouring cell in the given direction.
// The result may be off the board; callers check InBounds.
func (c Cell) Step(d Dir) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// SharesLine reports whether two cells are on the same row or column.
func (c Cell) SharesLine(other Cell) bool {
	return c.Row == other.Row || c.Col == other.Col
}

// Rect returns the tile's pixel rectangle on the logical surface.
func (c Cell) Rect() Rect {
	return NewRect(c.Col*TileSize, c.Row*TileSize, TileSize, TileSize)
}

// Center returns the tile's pixel center on the logical surface.
func (c Cell) Center() (int, int) {
	return c.Rect().Center()
}

// Dir is one of the four unit axis moves.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists every direction in a stable order.
// Random walks index into it, so the order is part of replay determinism.
var Dirs = [4]Dir{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the (row, col) offset for one step.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
