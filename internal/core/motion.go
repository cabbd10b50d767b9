package core

import "math"

// MoveVelocity integrates pos by vel over dt and returns the step applied,
// so callers can carry attached entities by the same amount.
func MoveVelocity(pos *Vec2, vel Vec2, dt float64) Vec2 {
	step := vel.Scale(dt)
	*pos = pos.Add(step)
	return step
}

// Move advances pos toward target at a constant speed.
// When the remaining distance is shorter than one step it snaps exactly onto
// the target, so the mover never overshoots or oscillates around it.
func Move(pos *Vec2, target Vec2, speed, dt float64) {
	dir := target.Sub(*pos)
	remaining := dir.Length()
	if remaining == 0 {
		return
	}

	stepDistance := speed * dt
	if remaining < stepDistance {
		*pos = target
		return
	}
	*pos = pos.Add(dir.Normalize().Scale(stepDistance))
}

// Rotate turns angle toward target along the shortest arc, at most
// degreesPerSecond*dt degrees per call. Angles are in degrees; the result is
// reduced modulo 360 and keeps the sign of the unreduced value.
func Rotate(angle, target, degreesPerSecond, dt float64) float64 {
	degrees := degreesPerSecond * dt

	theta := target - angle
	diff := math.Mod(math.Abs(theta), 360)
	if diff > 180 {
		diff = 360 - diff
	}

	if degrees > diff {
		return target
	}

	sign := -1.0
	if (theta > 0 && theta < 180) || (theta <= -180 && theta >= -360) {
		sign = 1
	}

	return math.Mod(angle+degrees*sign, 360)
}

// AngularDistance returns the unsigned shortest arc between two angles, in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
