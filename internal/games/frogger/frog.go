package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Board is the playfield geometry in pixels.
type Board struct {
	Width  float64
	Height float64
	Tile   float64
}

// Frog is the player actor. It hops one tile at a time toward Target and
// turns toward TargetAngle; it is at rest when it stands on its target.
type Frog struct {
	Box         core.AABB
	Target      core.Vec2
	Angle       float64
	TargetAngle float64
	Squashed    bool

	ride   Ride
	riding bool
	fade   float64 // Seconds left on the board once squashed
}

// NewFrog creates a resting frog with its top-left corner at pos.
func NewFrog(pos core.Vec2, size float64) *Frog {
	return &Frog{
		Box:    core.AABB{Pos: pos, W: size, H: size},
		Target: pos,
	}
}

// AtRest reports whether the frog stands exactly on its target.
func (f *Frog) AtRest() bool {
	return f.Box.Pos == f.Target
}

// Riding returns the floater the frog is attached to, if any.
func (f *Frog) Riding() (Ride, bool) {
	return f.ride, f.riding
}

// RideOn attaches the frog to a floater.
func (f *Frog) RideOn(r Ride) {
	f.ride = r
	f.riding = true
}

// StopRiding detaches the frog from its floater.
func (f *Frog) StopRiding() {
	f.ride = Ride{}
	f.riding = false
}

// Hop sets a new target one tile away in the direction of action and turns
// the frog to face it. Hops are only accepted at rest and always leave the
// current floater. It reports whether the hop was accepted.
//
// Up and down hops that would leave the board are cancelled in place;
// left and right hops are clamped onto the edge column.
func (f *Frog) Hop(action core.Action, b Board) bool {
	if f.Squashed || !f.AtRest() {
		return false
	}

	inset := (b.Tile - f.Box.W) / 2

	switch action {
	case core.ActionUp:
		f.Target.Y -= b.Tile
		if f.Target.Y < 0 {
			f.Target.Y += b.Tile
		}
		f.TargetAngle = 0
	case core.ActionDown:
		f.Target.Y += b.Tile
		if f.Target.Y+f.Box.H > b.Height {
			f.Target.Y -= b.Tile
		}
		f.TargetAngle = 180
	case core.ActionLeft:
		f.Target.X -= b.Tile
		if f.Target.X < 0 {
			f.Target.X = inset
		}
		f.TargetAngle = 270
	case core.ActionRight:
		f.Target.X += b.Tile
		if f.Target.X+f.Box.W > b.Width {
			f.Target.X = b.Width - b.Tile + inset
		}
		f.TargetAngle = 90
	default:
		return false
	}

	f.StopRiding()
	return true
}

// Carry moves the frog with a floater. Its target moves along so a resting
// frog stays at rest.
func (f *Frog) Carry(velocity core.Vec2, dt float64) {
	step := core.MoveVelocity(&f.Box.Pos, velocity, dt)
	f.Target.X += step.X
}

// Advance moves the frog toward its target and turns it toward its target angle.
func (f *Frog) Advance(dt, speed, rotationSpeed float64) {
	if !f.AtRest() {
		core.Move(&f.Box.Pos, f.Target, speed, dt)
	}
	if f.Angle != f.TargetAngle {
		f.Angle = core.Rotate(f.Angle, f.TargetAngle, rotationSpeed, dt)
	}
}

// OffBoard reports whether the frog's box lies entirely outside the board's
// horizontal extent.
func (f *Frog) OffBoard(width float64) bool {
	return f.Box.Right() < 0 || f.Box.Pos.X > width
}

// Squash turns the frog into a corpse. Its rotation freezes and it shifts
// up-left by offset. A frog caught mid-hop keeps sliding, but only half of
// the remaining way. The corpse stays visible for fade seconds.
func (f *Frog) Squash(offset, fade float64) {
	f.Squashed = true
	f.StopRiding()
	f.TargetAngle = f.Angle
	f.fade = fade

	shift := core.V(offset, offset)
	if f.AtRest() {
		f.Box.Pos = f.Box.Pos.Sub(shift)
		f.Target = f.Box.Pos
		return
	}

	f.Box.Pos = f.Box.Pos.Sub(shift)
	f.Target = f.Target.Sub(shift)
	f.Target = f.Box.Pos.Add(f.Target.Sub(f.Box.Pos).Scale(0.5))
}

// Fade counts down a corpse's remaining time and reports whether it has expired.
func (f *Frog) Fade(dt float64) bool {
	f.fade -= dt
	return f.fade <= 0
}

// Sprite returns the frog's visual state.
func (f *Frog) Sprite() Sprite {
	kind := SpriteFrog
	if f.Squashed {
		kind = SpriteSquashedFrog
	}
	return Sprite{Kind: kind, Box: f.Box, Angle: f.Angle}
}
