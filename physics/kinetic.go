package physics

// Kinetic is the minimal vertical integration state shared by the player and
// the enemy. Velocity is positive upward; Y grows downward, so integration
// subtracts velocity from Y.
type Kinetic struct {
	Y        float64
	Velocity float64
}

// Integrate advances one reference step: gravity pulls velocity down, then
// position moves against velocity.
func Integrate(k *Kinetic, gravity, step float64) {
	k.Velocity -= gravity * step
	k.Y -= k.Velocity * step
}

// ReflectFloor clamps at floorY and inverts velocity scaled by the retention
// factor. Velocities below minVelocity are zeroed so the body settles instead
// of micro-bouncing forever. Returns the impact speed (0 if no contact).
func ReflectFloor(k *Kinetic, floorY, retention, minVelocity float64) float64 {
	if k.Y < floorY {
		return 0
	}
	impact := -k.Velocity // falling velocity is negative
	if impact < 0 {
		impact = 0
	}
	k.Y = floorY
	k.Velocity = -k.Velocity * retention
	if k.Velocity < minVelocity {
		k.Velocity = 0
	}
	return impact
}

// ReflectCeiling is the symmetric clamp-and-invert at y = 0.
func ReflectCeiling(k *Kinetic, retention float64) bool {
	if k.Y > 0 {
		return false
	}
	k.Y = 0
	k.Velocity = -k.Velocity * retention
	return true
}

// Grounded reports whether the body is resting on the floor.
func Grounded(k *Kinetic, floorY float64) bool {
	return k.Y >= floorY && k.Velocity == 0
}

// Approach moves current toward target by the given exponential factor.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AABBOverlap reports whether two axis-aligned boxes, given by center and
// half extents, intersect.
func AABBOverlap(ax, ay, ahw, ahh, bx, by, bhw, bhh float64) bool {
	if ax+ahw < bx-bhw || bx+bhw < ax-ahw {
		return false
	}
	if ay+ahh < by-bhh || by+bhh < ay-ahh {
		return false
	}
	return true
}
