// Package frogger implements a Frogger-style game.
// The player hops a frog across a road of scrolling cars and a river of
// drifting logs and turtles to fill the five goal slots on the far bridge.
package frogger

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// hopActions are checked in this order; at most one hop is taken per tick.
var hopActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Game adapts the World to the frame-driven game loop.
type Game struct {
	world   *World
	cfg     config.FroggerConfig
	fixed   *config.FroggerConfig // Skips config loading when set
	runtime core.RuntimeConfig
	paused  bool
	runID   string
	logger  *log.Logger
	runLog  *log.Logger
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.FroggerConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

// SetLogger sets the logger game events are written to.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game with a freshly rolled board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.runID = uuid.NewString()
	g.runLog = g.logger.With("run", g.runID)

	cfg := g.loadConfig()
	world, err := NewWorld(cfg, runtime.Seed)
	if err != nil {
		g.runLog.Error("invalid board, using defaults", "error", err)
		cfg = config.DefaultFroggerConfig()
		world, _ = NewWorld(cfg, runtime.Seed)
	}

	g.cfg = cfg
	g.world = world
	g.runLog.Info("game started",
		"seed", runtime.Seed,
		"lanes", len(world.Lanes()),
		"rivers", len(world.Rivers()),
		"lives", world.Lives())
}

func (g *Game) loadConfig() config.FroggerConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		g.runLog.Warn("config load failed, using defaults", "error", err)
		cfg = config.DefaultFroggerConfig()
	}
	return cfg
}

// Step advances the game by one frame of in.DT seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Status() != StatusPlaying {
		// Rows keep scrolling behind the end screen.
		g.world.Step(in.DT)
		g.world.DrainEvents()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range hopActions {
		if in.Has(a) {
			g.world.Hop(a)
			break
		}
	}

	g.world.Step(in.DT)
	g.logEvents(g.world.DrainEvents())

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventDeath:
			g.runLog.Info("frog died", "cause", ev.Cause, "lives", ev.Lives, "tick", ev.Tick)
		case EventHome:
			g.runLog.Info("frog home", "slot", ev.Slot, "finished", ev.Finished, "tick", ev.Tick)
		case EventGameOver:
			g.runLog.Info("game over", "finished", ev.Finished, "tick", ev.Tick)
		case EventWin:
			g.runLog.Info("game won", "lives", ev.Lives, "tick", ev.Tick)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Lives:    g.world.Lives(),
		Finished: g.world.Finished(),
		GameOver: g.world.Status() != StatusPlaying,
		Won:      g.world.Status() == StatusWon,
		Paused:   g.paused,
	}
}

// World returns the running simulation.
func (g *Game) World() *World {
	return g.world
}

// RunID returns the id of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Snapshot returns the current state tagged with the run id.
func (g *Game) Snapshot() Snapshot {
	s := g.world.Snapshot()
	s.RunID = g.runID
	return s
}
