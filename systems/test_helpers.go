package systems

import (
	"github.com/lixenwraith/bounce-fighter/core"
)

// soundRecorder captures playback requests for assertions.
type soundRecorder struct {
	events  []core.SoundType
	volumes []float64
	muted   bool
}

func (s *soundRecorder) Play(t core.SoundType, volume float64) {
	s.events = append(s.events, t)
	s.volumes = append(s.volumes, volume)
}

func (s *soundRecorder) SetMuted(muted bool) { s.muted = muted }
func (s *soundRecorder) Muted() bool         { return s.muted }

func (s *soundRecorder) count(t core.SoundType) int {
	n := 0
	for _, e := range s.events {
		if e == t {
			n++
		}
	}
	return n
}
