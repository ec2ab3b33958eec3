package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wampus-world/internal/config"
	"github.com/vovakirdan/wampus-world/internal/core"
)

// Terminal cells per board tile. A 60×60 tile becomes 4 columns by 2 rows,
// which looks roughly square in most fonts.
const (
	CellCols = 4
	CellRows = 2

	BoardW = core.Cols * CellCols
	BoardH = core.Rows * CellRows
)

// Box-drawing runes for grid lines.
const (
	runeVLine = '│'
	runeHLine = '─'
	runeCross = '┼'
)

// Glyphs are the runes painted for board entities.
type Glyphs struct {
	Player rune
	Hazard rune
	Pit    rune
	Gold   rune
}

// DefaultGlyphs returns the stock entity runes.
func DefaultGlyphs() Glyphs {
	return GlyphsFrom(config.Default().Terminal)
}

// GlyphsFrom builds glyphs from terminal config, keeping the first rune of
// each setting.
func GlyphsFrom(tc config.TerminalConfig) Glyphs {
	return Glyphs{
		Player: config.Glyph(tc.Player, '@'),
		Hazard: config.Glyph(tc.Hazard, 'W'),
		Pit:    config.Glyph(tc.Pit, '#'),
		Gold:   config.Glyph(tc.Gold, '$'),
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGold:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// palette holds the RGB each terminal color is assumed to show, for
// nearest-color matching of draw commands.
var palette = []struct {
	c   core.Color
	rgb color.RGBA
}{
	{core.ColorRed, color.RGBA{205, 0, 0, 255}},
	{core.ColorGreen, color.RGBA{0, 205, 0, 255}},
	{core.ColorYellow, color.RGBA{205, 205, 0, 255}},
	{core.ColorBlue, color.RGBA{0, 0, 238, 255}},
	{core.ColorMagenta, color.RGBA{205, 0, 205, 255}},
	{core.ColorCyan, color.RGBA{0, 205, 205, 255}},
	{core.ColorWhite, color.RGBA{229, 229, 229, 255}},
	{core.ColorBrightRed, color.RGBA{255, 0, 0, 255}},
	{core.ColorBrightGreen, color.RGBA{0, 255, 0, 255}},
	{core.ColorBrightYellow, color.RGBA{255, 255, 0, 255}},
	{core.ColorBrightBlue, color.RGBA{92, 92, 255, 255}},
	{core.ColorBrightWhite, color.RGBA{255, 255, 255, 255}},
	{core.ColorGold, color.RGBA{255, 215, 0, 255}},
	{core.ColorGray, color.RGBA{188, 188, 188, 255}},
}

// nearestColor returns the terminal color closest to c.
func nearestColor(c color.RGBA) core.Color {
	best, bestDist := core.ColorDefault, -1
	for _, p := range palette {
		dr := int(c.R) - int(p.rgb.R)
		dg := int(c.G) - int(p.rgb.G)
		db := int(c.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.c, d
		}
	}
	return best
}

// cellX and cellY map logical pixels to terminal cells.
func cellX(px int) int { return px * CellCols / core.TileSize }
func cellY(py int) int { return py * CellRows / core.TileSize }

// Rasterize paints a draw list onto the screen. Coordinates are scaled from
// the logical surface to terminal cells; circles collapse to one glyph at
// their center and filled rects repeat the layer glyph.
func Rasterize(s *core.Screen, d core.DrawList, g Glyphs) {
	for _, cmd := range d {
		switch cmd.Op {
		case core.OpFill:
			s.Clear()
		case core.OpLine:
			drawLine(s, cmd)
		case core.OpRect:
			x0, y0 := cellX(cmd.X), cellY(cmd.Y)
			x1, y1 := cellX(cmd.X+cmd.W), cellY(cmd.Y+cmd.H)
			s.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), layerGlyph(cmd.Layer, g), nearestColor(cmd.Color))
		case core.OpCircle:
			s.SetColored(cellX(cmd.X), cellY(cmd.Y), layerGlyph(cmd.Layer, g), nearestColor(cmd.Color))
		case core.OpText:
			s.DrawText(cellX(cmd.X), cellY(cmd.Y), cmd.Text, nearestColor(cmd.Color))
		}
	}
}

// drawLine handles the axis-aligned lines the board uses. Crossing lines
// join into a cross.
func drawLine(s *core.Screen, cmd core.Command) {
	c := nearestColor(cmd.Color)
	switch {
	case cmd.X == cmd.X2:
		x := cellX(cmd.X)
		for y := cellY(min(cmd.Y, cmd.Y2)); y < cellY(max(cmd.Y, cmd.Y2)); y++ {
			s.SetColored(x, y, joinLine(s.Get(x, y), runeVLine), c)
		}
	case cmd.Y == cmd.Y2:
		y := cellY(cmd.Y)
		for x := cellX(min(cmd.X, cmd.X2)); x < cellX(max(cmd.X, cmd.X2)); x++ {
			s.SetColored(x, y, joinLine(s.Get(x, y), runeHLine), c)
		}
	}
}

func joinLine(existing, r rune) rune {
	if (existing == runeVLine && r == runeHLine) || (existing == runeHLine && r == runeVLine) || existing == runeCross {
		return runeCross
	}
	return r
}

func layerGlyph(l core.Layer, g Glyphs) rune {
	switch l {
	case core.LayerPlayer:
		return g.Player
	case core.LayerHazard:
		return g.Hazard
	case core.LayerPit:
		return g.Pit
	case core.LayerGold:
		return g.Gold
	default:
		return ' '
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
