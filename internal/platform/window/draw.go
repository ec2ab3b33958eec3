package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// defaultFontSize is the start-screen text size; long lines run off the
// right edge at this size, as they always have.
const defaultFontSize = 36

// resources holds the font face and the cached circle sprites.
type resources struct {
	face    font.Face
	ascent  int
	circles map[int]*ebiten.Image
}

func loadResources(size float64) (*resources, error) {
	if size <= 0 {
		size = defaultFontSize
	}

	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: parse font: %w", err)
	}

	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return &resources{
		face:    face,
		ascent:  face.Metrics().Ascent.Ceil(),
		circles: make(map[int]*ebiten.Image),
	}, nil
}

// draw paints a draw list onto the screen.
func (r *resources) draw(screen *ebiten.Image, d core.DrawList) error {
	for _, cmd := range d {
		switch cmd.Op {
		case core.OpFill:
			if err := screen.Fill(cmd.Color); err != nil {
				return fmt.Errorf("window: fill: %w", err)
			}
		case core.OpLine:
			ebitenutil.DrawLine(screen, float64(cmd.X), float64(cmd.Y), float64(cmd.X2), float64(cmd.Y2), cmd.Color)
		case core.OpRect:
			ebitenutil.DrawRect(screen, float64(cmd.X), float64(cmd.Y), float64(cmd.W), float64(cmd.H), cmd.Color)
		case core.OpCircle:
			if err := r.drawCircle(screen, cmd); err != nil {
				return err
			}
		case core.OpText:
			// Commands give the top-left corner; text.Draw wants the baseline.
			text.Draw(screen, cmd.Text, r.face, cmd.X, cmd.Y+r.ascent, cmd.Color)
		}
	}
	return nil
}

// drawCircle draws a white circle sprite tinted to the command color.
func (r *resources) drawCircle(screen *ebiten.Image, cmd core.Command) error {
	img, err := r.circle(cmd.Radius)
	if err != nil {
		return err
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cmd.X-cmd.Radius), float64(cmd.Y-cmd.Radius))
	op.ColorM.Scale(
		float64(cmd.Color.R)/0xff,
		float64(cmd.Color.G)/0xff,
		float64(cmd.Color.B)/0xff,
		float64(cmd.Color.A)/0xff,
	)
	return screen.DrawImage(img, op)
}

func (r *resources) circle(radius int) (*ebiten.Image, error) {
	if img, ok := r.circles[radius]; ok {
		return img, nil
	}
	img, err := ebiten.NewImageFromImage(circleMask(radius), ebiten.FilterDefault)
	if err != nil {
		return nil, fmt.Errorf("window: circle sprite: %w", err)
	}
	r.circles[radius] = img
	return img, nil
}

// circleMask returns a white filled circle of the given radius on a
// transparent square of side 2*radius.
func circleMask(radius int) *image.RGBA {
	side := 2 * radius
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	r2 := radius * radius
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			// Sample at pixel centers.
			dx := 2*x + 1 - side
			dy := 2*y + 1 - side
			if dx*dx+dy*dy <= 4*r2 {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}
