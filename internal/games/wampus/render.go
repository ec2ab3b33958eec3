package wampus

import (
	"image/color"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// Palette of the logical surface.
var (
	ColorBackground = color.RGBA{50, 50, 50, 255}
	ColorGrid       = color.RGBA{200, 200, 200, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorPlayer     = color.RGBA{0, 255, 0, 255}
	ColorHazard     = color.RGBA{255, 0, 0, 255}
	ColorPit        = color.RGBA{0, 0, 255, 255}
	ColorGold       = color.RGBA{255, 215, 0, 255}
)

// Start screen text layout.
const (
	instructionsX    = 50
	instructionsY    = 50
	instructionsStep = 40
)

// Instructions are the lines shown on the start screen.
var Instructions = []string{
	"Welcome to the Extended Wampus World!",
	"Use arrow keys to move the player:",
	"- Up: Arrow Up",
	"- Down: Arrow Down",
	"- Left: Arrow Left",
	"- Right: Arrow Right",
	"Press 'Space' to shoot the arrow.",
	"Goal: Collect the gold, kill the Wampus, and return to the start to win!",
	"Press any key to begin!",
}

// RenderStart draws the instructions screen.
func RenderStart() core.DrawList {
	d := make(core.DrawList, 0, 2+2*core.Rows+len(Instructions))
	d.Fill(ColorBackground)
	drawGrid(&d)
	for i, line := range Instructions {
		d.Text(instructionsX, instructionsY+i*instructionsStep, line, ColorText)
	}
	return d
}

// RenderWorld draws the board: background, grid, pits, then the hazard,
// gold, and player on top. Dead hazards and collected gold are skipped.
func RenderWorld(w World) core.DrawList {
	d := make(core.DrawList, 0, 1+2*core.Rows+len(w.Pits)+3)
	d.Fill(ColorBackground)
	drawGrid(&d)

	for _, p := range w.Pits {
		d.Rect(core.LayerPit, p.Cell.Rect(), ColorPit)
	}

	if w.Hazard.Alive {
		cx, cy := w.Hazard.Cell.Center()
		d.Circle(core.LayerHazard, cx, cy, core.TileSize/3, ColorHazard)
	}

	if !w.Gold.Collected {
		cx, cy := w.Gold.Cell.Center()
		d.Circle(core.LayerGold, cx, cy, core.TileSize/4, ColorGold)
	}

	cx, cy := w.Player.Cell.Center()
	d.Circle(core.LayerPlayer, cx, cy, core.TileSize/3, ColorPlayer)

	return d
}

// drawGrid draws a line on the leading edge of every tile column and row.
func drawGrid(d *core.DrawList) {
	for x := 0; x < core.SurfaceW; x += core.TileSize {
		d.Line(core.LayerGrid, x, 0, x, core.SurfaceH, ColorGrid)
	}
	for y := 0; y < core.SurfaceH; y += core.TileSize {
		d.Line(core.LayerGrid, 0, y, core.SurfaceW, y, ColorGrid)
	}
}
