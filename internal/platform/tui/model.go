package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wampus-world/internal/core"
	"github.com/vovakirdan/wampus-world/internal/games/wampus"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

// Game is what the terminal frontend drives: the core contract plus the
// notifications raised since the last call.
type Game interface {
	core.Game
	DrainEvents() []wampus.Event
}

// Options configures a terminal session.
type Options struct {
	Glyphs Glyphs
	Keys   KeyMap
	Logger *log.Logger // Receives game notifications; nil discards them
}

// DefaultOptions returns stock glyphs and bindings with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Glyphs: DefaultGlyphs(),
		Keys:   DefaultKeyMap(),
	}
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	glyphs     Glyphs
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(max(cfg.ScreenW, BoardW), BoardH),
		config:     cfg,
		glyphs:     opts.Glyphs,
		keys:       opts.Keys,
		keyMapper:  NewKeyMapper(opts.Keys),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit also goes
// through the game so the outcome is recorded.
//
// Terminals deliver auto-repeat as separate presses, so holding an arrow
// keeps moving; there is no key-up event to tell the two apart.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize widens the screen so start-screen text is not clipped.
// The board itself never changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, BoardW), BoardH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range m.game.DrainEvents() {
		m.logger.Info(e.Message(), "event", e.Kind, "row", e.Cell.Row, "col", e.Cell.Col, "tick", e.Tick)
		m.status = e.Message()
	}

	if m.gameState.Done {
		m.logger.Debug("game finished", "title", m.game.Title())
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// Status returns the latest notification shown under the board.
func (m Model) Status() string {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.screen, m.game.Render(), m.glyphs)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	// Once the game is over the keys do nothing, so the help goes away and
	// the final message stands out until the pause ends.
	switch {
	case m.gameState.Over:
		b.WriteString(overStyle.Render(m.status))
	case m.gameState.Playing:
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the game is done.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
