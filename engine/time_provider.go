package engine

import "time"

// TimeProvider supplies wall-clock reads for rate limiting (shoot cooldown).
// Frame integration never consults it; simulation trajectories depend only on
// the delta times fed to Update.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the production clock.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production clock.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time.
func (*MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
