package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// FloatClass is the look of a river platform. Both classes behave the same.
type FloatClass int

const (
	FloatLog FloatClass = iota
	FloatTurtle
)

// String returns the layout token for the class.
func (c FloatClass) String() string {
	if c == FloatTurtle {
		return "turtle"
	}
	return "log"
}

// Ride identifies the floater a frog is standing on by position in the
// board's river list and the river's floater list.
type Ride struct {
	River   int
	Floater int
}

// Floater is a log or turtle platform the frog can ride.
type Floater struct {
	Box   core.AABB
	Class FloatClass
	ride  Ride
}

// Bounds returns the floater's hitbox.
func (f *Floater) Bounds() core.AABB { return f.Box }

// OnCollide attaches a resting frog. A frog passing over mid-hop is unaffected.
func (f *Floater) OnCollide(w *World, _ core.Overlap) Response {
	if frog := w.Frog(); frog != nil && frog.AtRest() {
		frog.RideOn(f.ride)
	}
	return Handled
}

// River is a water row of floaters scrolling in one direction at one speed.
// Landing in the water itself drowns the frog.
type River struct {
	Box         core.AABB
	Direction   int
	Class       FloatClass
	Speed       float64 // Pixels per second
	Velocity    core.Vec2
	FloatLength float64
	Floaters    []*Floater

	tiler *Tiler
}

// NewRiver rolls a river's parameters from cfg and fills the row at y with
// floaters. index is the river's position in the board's river list.
func NewRiver(index int, y, width, tile float64, direction int, class FloatClass, cfg config.RiverConfig, rng *core.RNG) *River {
	r := &River{
		Box:       core.Box(0, y, width, tile),
		Direction: direction,
		Class:     class,
		Speed:     math.Round(rng.FloatRange(cfg.Speed.Min, cfg.Speed.Max)) * tile,
	}
	r.Velocity = core.V(float64(direction)*r.Speed, 0)
	r.FloatLength = float64(rng.IntRange(cfg.FloatLength.Min, cfg.FloatLength.Max)) * tile

	// A spacing equal to the float length would leave no water between floaters.
	spacing := float64(rng.IntRange(cfg.Spacing.Min, cfg.Spacing.Max)) * tile
	if spacing == r.FloatLength {
		spacing += tile
	}
	patternSpacing := float64(rng.IntRange(cfg.PatternSpacing.Min, cfg.PatternSpacing.Max)) * tile
	if patternSpacing == r.FloatLength {
		patternSpacing += tile
	}
	count := rng.IntRange(cfg.PatternCount.Min, cfg.PatternCount.Max)

	r.tiler = NewTiler(r.Box, direction, r.Velocity, spacing, patternSpacing, count, func(x float64) int {
		r.Floaters = append(r.Floaters, &Floater{
			Box:   core.Box(x, y, r.FloatLength, tile),
			Class: class,
			ride:  Ride{River: index, Floater: len(r.Floaters)},
		})
		return len(r.Floaters) - 1
	})

	return r
}

// Tiler exposes the river's pattern layout.
func (r *River) Tiler() *Tiler { return r.tiler }

// Update scrolls the floaters.
func (r *River) Update(dt float64) {
	r.tiler.Update(dt, func(i int, dx float64) {
		r.Floaters[i].Box.Pos.X += dx
	})
}

// Colliders returns the floaters followed by the river itself, so a frog
// on a floater is never checked against the water.
func (r *River) Colliders() []Collider {
	out := make([]Collider, 0, len(r.Floaters)+1)
	for _, f := range r.Floaters {
		out = append(out, f)
	}
	return append(out, r)
}

// Bounds returns the whole row.
func (r *River) Bounds() core.AABB { return r.Box }

// OnCollide drowns a frog that comes to rest in open water.
func (r *River) OnCollide(w *World, _ core.Overlap) Response {
	if frog := w.Frog(); frog != nil && frog.AtRest() {
		w.SplashFrog()
	}
	return Handled
}

// AppendSprites draws the water and its floaters.
func (r *River) AppendSprites(dst []Sprite) []Sprite {
	dst = append(dst, Sprite{Kind: SpriteWater, Box: r.Box})

	kind := SpriteLog
	if r.Class == FloatTurtle {
		kind = SpriteTurtle
	}
	for _, f := range r.Floaters {
		dst = append(dst, Sprite{Kind: kind, Box: f.Box, Direction: r.Direction})
	}
	return dst
}
