package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten"

	"github.com/vovakirdan/wampus-world/internal/core"
)

func TestCircleMask(t *testing.T) {
	const radius = 20
	img := circleMask(radius)

	if b := img.Bounds(); b.Dx() != 2*radius || b.Dy() != 2*radius {
		t.Fatalf("bounds = %v, expected %dx%d", b, 2*radius, 2*radius)
	}

	tests := []struct {
		name   string
		x, y   int
		filled bool
	}{
		{"center", radius, radius, true},
		{"top edge middle", radius, 0, true},
		{"left edge middle", 0, radius, true},
		{"top-left corner", 0, 0, false},
		{"bottom-right corner", 2*radius - 1, 2*radius - 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, a := img.At(tc.x, tc.y).RGBA()
			if filled := a > 0; filled != tc.filled {
				t.Errorf("(%d,%d) filled = %v, expected %v", tc.x, tc.y, filled, tc.filled)
			}
		})
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.Action
	}{
		{ebiten.KeyUp, core.ActionUp},
		{ebiten.KeyDown, core.ActionDown},
		{ebiten.KeyLeft, core.ActionLeft},
		{ebiten.KeyRight, core.ActionRight},
		{ebiten.KeySpace, core.ActionShoot},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
		{ebiten.KeyA, core.ActionKey},
		{ebiten.KeyEnter, core.ActionKey},
	}

	for _, tc := range tests {
		if got := actionFor(tc.key); got != tc.expected {
			t.Errorf("actionFor(%v) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}
