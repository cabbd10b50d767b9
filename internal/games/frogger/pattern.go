package frogger

import (
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Pattern is one repeat of evenly spaced bodies moving as a unit.
type Pattern struct {
	Offset  core.Vec2 // Left edge of the pattern
	Members []int     // Indices into the owning row's body list
}

// Tiler lays repeating patterns edge to edge across a row and scrolls them,
// wrapping each pattern to the far side once it leaves the row.
//
// It builds ceil(width/TotalLength)+1 patterns, so the ring they form is always
// at least one pattern longer than the row and no gap shows at either edge.
type Tiler struct {
	Width          float64
	Direction      int
	Velocity       core.Vec2
	Spacing        float64 // Distance between siblings in a pattern
	PatternSpacing float64 // Distance from a pattern's last member to the next pattern
	Count          int     // Members per pattern
	TotalLength    float64 // Spacing*(Count-1) + PatternSpacing
	Patterns       []Pattern
}

// NewTiler builds the patterns for row. spawn is called once per member with
// the member's initial x and returns the member's index in the caller's list.
func NewTiler(row core.AABB, direction int, velocity core.Vec2, spacing, patternSpacing float64, count int, spawn func(x float64) int) *Tiler {
	t := &Tiler{
		Width:          row.W,
		Direction:      direction,
		Velocity:       velocity,
		Spacing:        spacing,
		PatternSpacing: patternSpacing,
		Count:          count,
		TotalLength:    spacing*float64(count-1) + patternSpacing,
	}

	numPatterns := int(math.Ceil(row.W/t.TotalLength)) + 1
	t.Patterns = make([]Pattern, 0, numPatterns)

	patternX := 0.0
	for p := 0; p < numPatterns; p++ {
		pattern := Pattern{
			Offset:  core.V(patternX, row.Pos.Y),
			Members: make([]int, 0, count),
		}

		memberX := patternX
		for c := 0; c < count; c++ {
			pattern.Members = append(pattern.Members, spawn(memberX))
			memberX += spacing
		}

		t.Patterns = append(t.Patterns, pattern)
		patternX += t.TotalLength
	}

	return t
}

// Span returns the length of the ring all patterns occupy.
func (t *Tiler) Span() float64 {
	return t.TotalLength * float64(len(t.Patterns))
}

// Update scrolls every pattern by Velocity*dt, wraps it, and hands the
// resulting delta (wrap included) to move for each member.
func (t *Tiler) Update(dt float64, move func(member int, dx float64)) {
	span := t.Span()

	for i := range t.Patterns {
		pattern := &t.Patterns[i]
		lastX := pattern.Offset.X

		core.MoveVelocity(&pattern.Offset, t.Velocity, dt)

		switch {
		case t.Direction > 0 && pattern.Offset.X >= t.Width:
			pattern.Offset.X -= span
		case t.Direction < 0 && pattern.Offset.X <= -t.TotalLength:
			pattern.Offset.X += span
		}

		dx := pattern.Offset.X - lastX
		for _, m := range pattern.Members {
			move(m, dx)
		}
	}
}
