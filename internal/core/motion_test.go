package core

import (
	"math"
	"testing"
	"time"
)

func TestMoveVelocityReturnsStep(t *testing.T) {
	pos := V(100, 50)
	step := MoveVelocity(&pos, V(-60, 0), 0.5)

	if step != V(-30, 0) {
		t.Errorf("MoveVelocity() step = %v, expected (-30, 0)", step)
	}
	if pos != V(70, 50) {
		t.Errorf("position = %v, expected (70, 50)", pos)
	}
}

func TestMoveSnapsWithoutOvershoot(t *testing.T) {
	pos := V(0, 0)
	target := V(0, -50)
	speed := 300.0
	dt := 1.0 / 60

	frames := 0
	for pos != target {
		Move(&pos, target, speed, dt)
		frames++
		if pos.Y < target.Y {
			t.Fatalf("overshot target: %v", pos)
		}
		if frames > 100 {
			t.Fatalf("did not reach target, stuck at %v", pos)
		}
	}

	// 50px at 5px per frame; rounding may leave a final snap frame
	if frames < 10 || frames > 11 {
		t.Errorf("reached target in %d frames, expected 10 or 11", frames)
	}
}

func TestMoveIdempotentAtTarget(t *testing.T) {
	target := V(410, 560)
	pos := target

	for _, dt := range []float64{0, 1.0 / 60, 0.5} {
		Move(&pos, target, 300, dt)
		if pos != target {
			t.Errorf("Move at target with dt=%v changed position to %v", dt, pos)
		}
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			t.Fatalf("Move produced NaN at target")
		}
	}
}

func TestRotateShortestPath(t *testing.T) {
	tests := []struct {
		name          string
		angle, target float64
		expectedSign  float64
	}{
		{"0 to 90 turns clockwise", 0, 90, 1},
		{"0 to 270 turns counter-clockwise", 0, 270, -1},
		{"270 to 0 turns clockwise", 270, 0, 1},
		{"90 to 0 turns counter-clockwise", 90, 0, -1},
		{"180 to 90 turns counter-clockwise", 180, 90, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := Rotate(tc.angle, tc.target, 1080, 1.0/60)
			delta := next - tc.angle
			// Normalize into (-180, 180] for the direction check
			for delta > 180 {
				delta -= 360
			}
			for delta <= -180 {
				delta += 360
			}
			if math.Signbit(delta) != math.Signbit(tc.expectedSign) {
				t.Errorf("Rotate(%v, %v) stepped to %v, wrong direction", tc.angle, tc.target, next)
			}
			if math.Abs(math.Abs(delta)-18) > 1e-9 {
				t.Errorf("Rotate step = %v, expected 18 degrees", delta)
			}
		})
	}
}

func TestRotateBoundedAndConverges(t *testing.T) {
	const speed = 1080.0
	const dt = 1.0 / 60
	maxStep := speed * dt

	for start := 0.0; start < 360; start += 15 {
		for target := 0.0; target < 360; target += 45 {
			angle := start
			steps := 0
			for angle != target {
				next := Rotate(angle, target, speed, dt)
				if d := AngularDistance(angle, next); d > maxStep+1e-9 {
					t.Fatalf("Rotate(%v -> %v) stepped %v degrees, max %v", angle, target, d, maxStep)
				}
				angle = next
				steps++
				if steps > 20 {
					t.Fatalf("Rotate(%v -> %v) did not converge, at %v", start, target, angle)
				}
			}
		}
	}
}

func TestRotateWrapsAtBoundary(t *testing.T) {
	// Turning left from 0 passes through negative angles before snapping to 270
	angle := Rotate(0, 270, 1080, 1.0/60)
	if angle != -18 {
		t.Errorf("Rotate(0, 270) = %v, expected -18", angle)
	}

	// Within one step of the target it lands exactly on it
	if got := Rotate(-85, 270, 1080, 1.0/60); got != 270 {
		t.Errorf("Rotate(-85, 270) = %v, expected snap to 270", got)
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	base := time.Unix(1000, 0)

	if dt := c.Tick(base); dt != 0 {
		t.Errorf("first Tick = %v, expected 0", dt)
	}
	if dt := c.Tick(base.Add(16 * time.Millisecond)); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Tick after 16ms = %v, expected 0.016", dt)
	}

	// A long pause becomes a zero-length tick
	if dt := c.Tick(base.Add(5 * time.Second)); dt != 0 {
		t.Errorf("Tick after a 5s pause = %v, expected 0", dt)
	}
	if dt := c.Tick(base.Add(5*time.Second + 20*time.Millisecond)); math.Abs(dt-0.02) > 1e-9 {
		t.Errorf("Tick after the pause = %v, expected 0.02", dt)
	}
}

func TestRepeatFilter(t *testing.T) {
	f := NewRepeatFilter(150 * time.Millisecond)
	base := time.Unix(1000, 0)

	if !f.Accept(ActionUp, base) {
		t.Error("first press should be accepted")
	}

	// Held key: auto-repeat every 30ms never re-registers
	for i := 1; i <= 20; i++ {
		if f.Accept(ActionUp, base.Add(time.Duration(i)*30*time.Millisecond)) {
			t.Fatalf("auto-repeat event %d should be dropped", i)
		}
	}

	// Other keys are independent
	if !f.Accept(ActionLeft, base.Add(610*time.Millisecond)) {
		t.Error("different key should be accepted")
	}

	// Released and pressed again after a quiet gap
	if !f.Accept(ActionUp, base.Add(time.Second)) {
		t.Error("press after quiet window should be accepted")
	}
}

func TestRNGRanges(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	for i := 0; i < 200; i++ {
		x := a.IntRange(2, 6)
		if x < 2 || x > 6 {
			t.Fatalf("IntRange(2, 6) = %d out of range", x)
		}
		if y := b.IntRange(2, 6); y != x {
			t.Fatalf("same seed diverged: %d != %d", x, y)
		}

		f := a.FloatRange(0.5, 2.5)
		b.FloatRange(0.5, 2.5)
		if f < 0.5 || f >= 2.5 {
			t.Fatalf("FloatRange(0.5, 2.5) = %v out of range", f)
		}
	}

	if got := a.IntRange(4, 4); got != 4 {
		t.Errorf("IntRange(4, 4) = %d, expected 4", got)
	}
}
