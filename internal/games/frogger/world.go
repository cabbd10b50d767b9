package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Status is the game's top-level state.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusWon
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// DeathCause says how a frog died.
type DeathCause int

const (
	DeathSquash    DeathCause = iota // Hit by a car or landed on the bridge
	DeathSplash                      // Landed in open water
	DeathOffBoard                    // Carried off the board by a floater
	DeathReLanding                   // Landed in a slot that is already taken
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case DeathSquash:
		return "squash"
	case DeathSplash:
		return "splash"
	case DeathOffBoard:
		return "off-board"
	case DeathReLanding:
		return "re-landing"
	default:
		return "unknown"
	}
}

// EventKind identifies a world event.
type EventKind int

const (
	EventDeath EventKind = iota
	EventHome
	EventGameOver
	EventWin
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventDeath:
		return "death"
	case EventHome:
		return "home"
	case EventGameOver:
		return "game over"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event records something the presentation layer may want to announce.
type Event struct {
	Kind     EventKind
	Cause    DeathCause // EventDeath only
	Slot     int        // EventHome only
	Lives    int        // Lives left after the event
	Finished int        // Slots filled after the event
	Tick     uint64
}

// World is the whole simulation: the board rows, the live frog, the corpses
// still on screen, and the lives and progress counters.
//
// Rows are built once. The updatable, drawable and collider lists only grow
// during construction and keep board order, top to bottom. The frog is
// replaced, never reused, after every death or homecoming.
type World struct {
	cfg   config.FroggerConfig
	board Board
	start core.Vec2

	updatables []Updatable
	drawables  []Drawable
	colliders  []Collider

	lanes  []*Lane
	rivers []*River
	bridge *Bridge

	frog    *Frog
	corpses []*Frog

	lives    int
	finished int
	status   Status
	ticks    uint64
	events   []Event
}

// NewWorld builds a board from cfg, rolling row parameters from seed, and
// spawns the first frog.
func NewWorld(cfg config.FroggerConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rows, err := ParseLayout(cfg.Board.Layout)
	if err != nil {
		return nil, err
	}

	tile := cfg.Board.TileSize
	w := &World{
		cfg: cfg,
		board: Board{
			Width:  cfg.BoardWidth(),
			Height: cfg.BoardHeight(),
			Tile:   tile,
		},
		lives: cfg.Gameplay.Lives,
	}

	inset := (tile - cfg.Frog.Size) / 2
	w.start = core.V((w.board.Width-tile)/2+inset, float64(len(rows)-1)*tile+inset)

	rng := core.NewRNG(seed)
	laneDirection := -1
	shade := 0

	for i, row := range rows {
		y := float64(i) * tile

		switch row.Kind {
		case RowLane:
			lane := NewLane(y, w.board.Width, tile, laneDirection, cfg.Lanes, rng)
			laneDirection = -laneDirection
			w.lanes = append(w.lanes, lane)
			w.updatables = append(w.updatables, lane)
			w.drawables = append(w.drawables, lane)
			w.colliders = append(w.colliders, lane.Colliders()...)
		case RowRiver:
			river := NewRiver(len(w.rivers), y, w.board.Width, tile, row.Direction, row.Class, cfg.Rivers, rng)
			w.rivers = append(w.rivers, river)
			w.updatables = append(w.updatables, river)
			w.drawables = append(w.drawables, river)
			w.colliders = append(w.colliders, river.Colliders()...)
		case RowBridge:
			w.bridge = NewBridge(y, w.board.Width, tile)
			w.drawables = append(w.drawables, w.bridge)
			w.colliders = append(w.colliders, w.bridge.Colliders()...)
		case RowSidewalk:
			w.drawables = append(w.drawables, &Sidewalk{Box: core.Box(0, y, w.board.Width, tile), Shade: shade})
			shade ^= 1
		default:
			return nil, fmt.Errorf("frogger: unhandled row kind %v", row.Kind)
		}
	}

	w.spawnFrog()
	return w, nil
}

// Step advances the simulation by dt seconds: corpses fade, the frog rides
// and hops, rows scroll, and then the frog is checked for collisions.
func (w *World) Step(dt float64) {
	w.ticks++

	w.updateCorpses(dt)

	if w.frog != nil {
		w.updateFrog(dt)
	}

	for _, u := range w.updatables {
		u.Update(dt)
	}

	if w.frog != nil {
		w.resolveCollisions()
	}
}

func (w *World) updateFrog(dt float64) {
	f := w.frog

	if ride, ok := f.Riding(); ok {
		if vel, ok := w.rideVelocity(ride); ok {
			f.Carry(vel, dt)
		}
		if f.OffBoard(w.board.Width) {
			w.KillFrog(DeathOffBoard)
			return
		}
	}

	f.Advance(dt, w.cfg.Frog.SpeedTiles*w.board.Tile, w.cfg.Frog.RotationSpeed)
}

func (w *World) updateCorpses(dt float64) {
	kept := w.corpses[:0]
	for _, c := range w.corpses {
		c.Advance(dt, w.cfg.Frog.SpeedTiles*w.board.Tile, w.cfg.Frog.RotationSpeed)
		if !c.Fade(dt) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(w.corpses); i++ {
		w.corpses[i] = nil
	}
	w.corpses = kept
}

func (w *World) rideVelocity(r Ride) (core.Vec2, bool) {
	if r.River < 0 || r.River >= len(w.rivers) {
		return core.Vec2{}, false
	}
	river := w.rivers[r.River]
	if r.Floater < 0 || r.Floater >= len(river.Floaters) {
		return core.Vec2{}, false
	}
	return river.Velocity, true
}

// Hop forwards a directional command to the live frog.
// It reports whether the frog accepted it.
func (w *World) Hop(action core.Action) bool {
	if w.status != StatusPlaying || w.frog == nil {
		return false
	}
	return w.frog.Hop(action, w.board)
}

// SquashFrog kills the frog, leaving its flattened body on the board for a while.
func (w *World) SquashFrog() {
	f := w.frog
	if f == nil {
		return
	}
	w.frog = nil

	f.Squash(w.cfg.Frog.SquashOffset, w.cfg.Frog.SquashFade)
	w.corpses = append(w.corpses, f)
	w.loseLife(DeathSquash)
}

// SplashFrog drowns the frog.
func (w *World) SplashFrog() {
	w.KillFrog(DeathSplash)
}

// KillFrog removes the frog from the board without a corpse.
func (w *World) KillFrog(cause DeathCause) {
	f := w.frog
	if f == nil {
		return
	}
	w.frog = nil
	f.StopRiding()
	w.loseLife(cause)
}

func (w *World) loseLife(cause DeathCause) {
	w.lives--
	w.emit(Event{Kind: EventDeath, Cause: cause})

	if w.lives <= 0 {
		w.lives = 0
		w.status = StatusGameOver
		w.emit(Event{Kind: EventGameOver})
		return
	}
	w.spawnFrog()
}

func (w *World) frogHome(t *Target) {
	w.frog = nil
	w.finished++
	w.emit(Event{Kind: EventHome, Slot: t.Slot})

	if w.finished >= TargetCount {
		w.status = StatusWon
		w.emit(Event{Kind: EventWin})
		return
	}
	w.spawnFrog()
}

func (w *World) spawnFrog() {
	w.frog = NewFrog(w.start, w.cfg.Frog.Size)
}

func (w *World) emit(ev Event) {
	ev.Lives = w.lives
	ev.Finished = w.finished
	ev.Tick = w.ticks
	w.events = append(w.events, ev)
}

// DrainEvents returns the events since the last call and clears them.
func (w *World) DrainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// Sprites returns the board's visual state in paint order: rows top to
// bottom, then corpses, then the live frog.
func (w *World) Sprites() []Sprite {
	out := make([]Sprite, 0, 64)
	for _, d := range w.drawables {
		out = d.AppendSprites(out)
	}
	for _, c := range w.corpses {
		out = append(out, c.Sprite())
	}
	if w.frog != nil {
		out = append(out, w.frog.Sprite())
	}
	return out
}

// Frog returns the live frog, or nil between a game's end and a restart.
func (w *World) Frog() *Frog { return w.frog }

// Corpses returns the squashed frogs still on the board.
func (w *World) Corpses() []*Frog { return w.corpses }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Finished returns the number of filled goal slots.
func (w *World) Finished() int { return w.finished }

// Status returns the game status.
func (w *World) Status() Status { return w.status }

// Ticks returns how many steps the world has taken.
func (w *World) Ticks() uint64 { return w.ticks }

// Board returns the playfield geometry.
func (w *World) Board() Board { return w.board }

// Start returns where new frogs appear.
func (w *World) Start() core.Vec2 { return w.start }

// Lanes returns the road rows, top to bottom.
func (w *World) Lanes() []*Lane { return w.lanes }

// Rivers returns the water rows, top to bottom.
func (w *World) Rivers() []*River { return w.rivers }

// Bridge returns the goal row.
func (w *World) Bridge() *Bridge { return w.bridge }

// Colliders returns the collision order.
func (w *World) Colliders() []Collider { return w.colliders }

// Config returns the configuration the world was built from.
func (w *World) Config() config.FroggerConfig { return w.cfg }
