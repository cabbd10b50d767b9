package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// TargetCount is the number of goal slots. Filling all of them wins.
const TargetCount = 5

// Target is a goal slot on the bridge.
type Target struct {
	Box      core.AABB
	Slot     int
	Occupied bool
}

// Bounds returns the slot's hitbox.
func (t *Target) Bounds() core.AABB { return t.Box }

// OnCollide sends a frog that lands fully inside the slot home.
// A frog that only partly overlaps is left for the bridge to deal with.
func (t *Target) OnCollide(w *World, code core.Overlap) Response {
	frog := w.Frog()
	if frog == nil || !frog.AtRest() {
		return Handled
	}
	if code != core.OverlapContained {
		return Deferred
	}
	if t.Occupied {
		w.KillFrog(DeathReLanding)
		return Handled
	}

	t.Occupied = true
	w.frogHome(t)
	return Handled
}

// Bridge is the goal row. Anything on it outside a free slot is deadly.
type Bridge struct {
	Box     core.AABB
	Targets []*Target
}

// NewBridge builds the bridge row at y with its goal slots evenly spread
// between one tile from the left edge and two tiles from the right.
func NewBridge(y, width, tile float64) *Bridge {
	b := &Bridge{Box: core.Box(0, y, width, tile)}

	step := (width - tile*3) / (TargetCount - 1)
	x := tile
	for i := 0; i < TargetCount; i++ {
		b.Targets = append(b.Targets, &Target{Box: core.Box(x, y, tile, tile), Slot: i})
		x += step
	}
	return b
}

// Colliders returns the slots followed by the bridge itself.
func (b *Bridge) Colliders() []Collider {
	out := make([]Collider, 0, len(b.Targets)+1)
	for _, t := range b.Targets {
		out = append(out, t)
	}
	return append(out, b)
}

// Bounds returns the whole row.
func (b *Bridge) Bounds() core.AABB { return b.Box }

// OnCollide squashes a frog that comes to rest outside a free slot.
func (b *Bridge) OnCollide(w *World, _ core.Overlap) Response {
	if frog := w.Frog(); frog != nil && frog.AtRest() {
		w.SquashFrog()
	}
	return Handled
}

// Occupied returns how many slots hold a frog.
func (b *Bridge) Occupied() int {
	n := 0
	for _, t := range b.Targets {
		if t.Occupied {
			n++
		}
	}
	return n
}

// AppendSprites draws the bridge and its slots.
func (b *Bridge) AppendSprites(dst []Sprite) []Sprite {
	dst = append(dst, Sprite{Kind: SpriteBridge, Box: b.Box})
	for _, t := range b.Targets {
		variant := 0
		if t.Occupied {
			variant = 1
		}
		dst = append(dst, Sprite{Kind: SpriteTarget, Box: t.Box, Variant: variant})
	}
	return dst
}

// Sidewalk is a safe row.
type Sidewalk struct {
	Box   core.AABB
	Shade int
}

// AppendSprites draws the sidewalk.
func (s *Sidewalk) AppendSprites(dst []Sprite) []Sprite {
	return append(dst, Sprite{Kind: SpriteSidewalk, Box: s.Box, Variant: s.Shade})
}
