package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bounce-fighter/constants"
	"github.com/lixenwraith/bounce-fighter/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager synthesizes all game audio through a single beep mixer. It
// implements core.SoundPlayer; playback is fire-and-forget and a manager that
// failed to initialize silently drops requests.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and clears the mixer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted flips the mute flag; in-flight effects are cleared immediately.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.initialized {
		sm.mixer.Clear()
	}
}

// Muted reports the mute flag.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play implements core.SoundPlayer.
func (sm *SoundManager) Play(t core.SoundType, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if volume <= 0 {
		return
	}
	if volume > 1 {
		volume = 1
	}

	var streamer beep.Streamer
	switch t {
	case core.SoundBounce:
		streamer = NewOscillator(constants.BounceFreq, constants.ShortEffectDuration, WaveSine, sampleRate)
	case core.SoundJump:
		streamer = NewOscillator(constants.JumpFreq, constants.ShortEffectDuration, WaveSquare, sampleRate)
	case core.SoundLaserHit:
		streamer = NewOscillator(constants.LaserHitFreq, constants.BuzzEffectDuration, WaveSaw, sampleRate)
	case core.SoundShoot:
		streamer = NewSweep(constants.ShootFreq, constants.ShootFreq/2, constants.ShortEffectDuration, sampleRate)
	case core.SoundEnemyHit:
		streamer = NewOscillator(constants.EnemyHitFreq, constants.ShortEffectDuration, WaveSine, sampleRate)
	case core.SoundGameOver:
		streamer = NewSweep(constants.GameOverFreq*2, constants.GameOverFreq/2, constants.GameOverEffectDuration, sampleRate)
	default:
		return
	}

	sm.mixer.Add(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeGain(volume),
		Silent:   false,
	})
}

// volumeGain maps linear [0,1] volume to the logarithmic Volume effect:
// 1.0 plays unchanged, quieter impacts drop by up to three octaves.
func volumeGain(volume float64) float64 {
	return (volume - 1) * 3
}
