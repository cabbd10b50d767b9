package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Response is a collider's answer to a collision.
type Response int

const (
	// Handled ends collision resolution for this frame.
	Handled Response = iota
	// Deferred lets the resolver keep scanning later colliders.
	Deferred
)

// Updatable is advanced once per frame.
type Updatable interface {
	Update(dt float64)
}

// Drawable exposes its visual state to the presentation layer.
type Drawable interface {
	AppendSprites(dst []Sprite) []Sprite
}

// Collider is checked against the frog every frame.
type Collider interface {
	Bounds() core.AABB
	OnCollide(w *World, code core.Overlap) Response
}

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteSidewalk SpriteKind = iota
	SpriteRoad
	SpriteWater
	SpriteBridge
	SpriteTarget
	SpriteCar
	SpriteLog
	SpriteTurtle
	SpriteFrog
	SpriteSquashedFrog
)

// String returns the sprite kind name.
func (k SpriteKind) String() string {
	switch k {
	case SpriteSidewalk:
		return "sidewalk"
	case SpriteRoad:
		return "road"
	case SpriteWater:
		return "water"
	case SpriteBridge:
		return "bridge"
	case SpriteTarget:
		return "target"
	case SpriteCar:
		return "car"
	case SpriteLog:
		return "log"
	case SpriteTurtle:
		return "turtle"
	case SpriteFrog:
		return "frog"
	case SpriteSquashedFrog:
		return "squashed-frog"
	default:
		return "unknown"
	}
}

// Sprite is everything the presentation layer may read about an entity.
type Sprite struct {
	Kind      SpriteKind
	Box       core.AABB
	Angle     float64 // Degrees, frogs only
	Direction int     // -1 left, +1 right, 0 none
	Variant   int     // Car model, sidewalk shade, or 1 for an occupied target
}
