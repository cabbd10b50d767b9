package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// CarModels is the number of distinct car looks a lane picks from.
const CarModels = 3

// Car is a road hazard. Any overlap squashes the frog.
type Car struct {
	Box     core.AABB
	Model   int
	Heading int
}

// Bounds returns the car's hitbox.
func (c *Car) Bounds() core.AABB { return c.Box }

// OnCollide squashes the frog regardless of overlap depth.
func (c *Car) OnCollide(w *World, _ core.Overlap) Response {
	w.SquashFrog()
	return Handled
}

// Lane is a road row of cars scrolling in one direction at one speed.
type Lane struct {
	Box       core.AABB
	Direction int
	Speed     float64 // Pixels per second
	Cars      []*Car

	tiler *Tiler
}

// NewLane rolls a lane's speed, spacing and pattern count from cfg and
// fills the row at y with cars.
func NewLane(y, width, tile float64, direction int, cfg config.LaneConfig, rng *core.RNG) *Lane {
	l := &Lane{
		Box:       core.Box(0, y, width, tile),
		Direction: direction,
		Speed:     float64(rng.IntRange(cfg.Speed.Min, cfg.Speed.Max)) * tile,
	}

	spacing := float64(rng.IntRange(cfg.Spacing.Min, cfg.Spacing.Max)) * tile
	patternSpacing := float64(rng.IntRange(cfg.PatternSpacing.Min, cfg.PatternSpacing.Max)) * tile
	count := rng.IntRange(cfg.PatternCount.Min, cfg.PatternCount.Max)
	velocity := core.V(float64(direction)*l.Speed, 0)

	l.tiler = NewTiler(l.Box, direction, velocity, spacing, patternSpacing, count, func(x float64) int {
		l.Cars = append(l.Cars, &Car{
			Box:     core.Box(x, y, tile*2, tile-1),
			Model:   rng.Intn(CarModels),
			Heading: direction,
		})
		return len(l.Cars) - 1
	})

	return l
}

// Tiler exposes the lane's pattern layout.
func (l *Lane) Tiler() *Tiler { return l.tiler }

// Update scrolls the cars.
func (l *Lane) Update(dt float64) {
	l.tiler.Update(dt, func(i int, dx float64) {
		l.Cars[i].Box.Pos.X += dx
	})
}

// Colliders returns the lane's cars. The road itself is harmless.
func (l *Lane) Colliders() []Collider {
	out := make([]Collider, 0, len(l.Cars))
	for _, c := range l.Cars {
		out = append(out, c)
	}
	return out
}

// AppendSprites draws the road and its cars.
func (l *Lane) AppendSprites(dst []Sprite) []Sprite {
	dst = append(dst, Sprite{Kind: SpriteRoad, Box: l.Box})
	for _, c := range l.Cars {
		dst = append(dst, Sprite{Kind: SpriteCar, Box: c.Box, Direction: c.Heading, Variant: c.Model})
	}
	return dst
}
