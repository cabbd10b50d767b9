package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// FooterHeight is the number of rows reserved for the key help line.
const FooterHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game          Game
	screen        *core.Screen
	config        core.RuntimeConfig
	fixedSeed     bool // Restarts reuse the seed instead of drawing a new one
	inputFrame    core.InputFrame
	gameState     core.GameState
	clock         *core.FrameClock
	repeat        *core.RepeatFilter
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	now           func() time.Time
	quitting      bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for platform events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir sets where Ctrl+S writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// WithRepeatWindow sets how long a held key is ignored after its first press.
func WithRepeatWindow(d time.Duration) Option {
	return func(m *Model) { m.repeat = core.NewRepeatFilter(d) }
}

// WithNow replaces the wall clock used for key repeat filtering.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config:     cfg,
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
		clock:      &core.FrameClock{},
		repeat:     core.NewRepeatFilter(core.DefaultRepeatWindow),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		now:        time.Now,
	}
	m.help.Width = cfg.ScreenW

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func boardHeight(screenH int) int {
	return core.Max(screenH-FooterHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case isHop(action):
		// Terminals report a held key as a stream of presses
		if m.repeat.Accept(action, m.now()) {
			m.inputFrame.Set(action)
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The board scales to the new
// size; the game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.clock.Reset()
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.DT = dt
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: no home directory for screenshots: %w", err)
		}
		dir = filepath.Join(home, ".frogger", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create %s: %w", dir, err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
