// Package window runs the game in a 600×600 ebiten window, drawing the
// logical surface one to one.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten"

	"github.com/vovakirdan/wampus-world/internal/core"
	"github.com/vovakirdan/wampus-world/internal/games/wampus"
)

// errDone ends ebiten.Run once the game has finished its dwell.
var errDone = errors.New("window: game done")

// Options configures the window.
type Options struct {
	Title    string
	FontSize float64
	Scale    float64
	Logger   *log.Logger // Receives game notifications; nil discards them
}

// Game is what the window drives: the core contract plus the notifications
// raised since the last call.
type Game interface {
	core.Game
	DrainEvents() []wampus.Event
}

// frontend adapts a game to ebiten's update callback.
type frontend struct {
	game   Game
	dt     time.Duration
	logger *log.Logger
	res    *resources
	input  core.InputFrame
}

// Run opens the window and blocks until the game is done or the window is
// closed.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = game.Title()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res, err := loadResources(opts.FontSize)
	if err != nil {
		return err
	}

	game.Reset(cfg)
	f := &frontend{
		game:   game,
		dt:     core.FrameDelta(cfg.TickRate),
		logger: logger,
		res:    res,
		input:  core.NewInputFrame(),
	}

	ebiten.SetMaxTPS(cfg.TickRate)
	err = ebiten.Run(f.update, core.SurfaceW, core.SurfaceH, opts.Scale, opts.Title)
	if err != nil && !errors.Is(err, errDone) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// update runs one frame: poll keys, step the game, log its events, draw.
func (f *frontend) update(screen *ebiten.Image) error {
	f.input.Clear()
	pollInput(&f.input)

	result := f.game.Step(f.input, f.dt)
	for _, e := range f.game.DrainEvents() {
		f.logger.Info(e.Message(), "event", e.Kind, "row", e.Cell.Row, "col", e.Cell.Col, "tick", e.Tick)
	}
	if result.State.Done {
		f.logger.Debug("game finished", "title", f.game.Title())
		return errDone
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return f.res.draw(screen, f.game.Render())
}
