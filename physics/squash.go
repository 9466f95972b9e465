package physics

import (
	"math"

	"github.com/lixenwraith/bounce-fighter/constants"
)

// SquashStretch computes the target deformation for a bouncing body:
// vertical stretch while airborne proportional to speed, a resting squash
// when grounded, neutral otherwise. Both the player and the enemy share this;
// the caller smooths toward the result with Approach.
func SquashStretch(velocity float64, grounded bool) (scaleX, scaleY float64) {
	if grounded {
		return constants.RestSquashX, constants.RestSquashY
	}
	stretch := math.Abs(velocity) * constants.StretchPerVelocity
	if stretch > constants.MaxStretch {
		stretch = constants.MaxStretch
	}
	return 1 - stretch*0.5, 1 + stretch
}
