package window

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/vovakirdan/wampus-world/internal/core"
)

// keyActions lists the bound keys. Keys pressed in the same frame are
// reported in this order. Esc and Q quit even on the start screen, where
// every other key starts the game; closing the window also quits.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyUp, core.ActionUp},
	{ebiten.KeyDown, core.ActionDown},
	{ebiten.KeyLeft, core.ActionLeft},
	{ebiten.KeyRight, core.ActionRight},
	{ebiten.KeySpace, core.ActionShoot},
}

// actionFor returns the action bound to k, or ActionKey for any other key.
func actionFor(k ebiten.Key) core.Action {
	for _, ka := range keyActions {
		if ka.key == k {
			return ka.action
		}
	}
	return core.ActionKey
}

// pollInput appends the keys pressed since the last frame.
func pollInput(frame *core.InputFrame) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(actionFor(k))
		}
	}
}
