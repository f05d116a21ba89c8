package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// Sound effect generators

// GeneratePlayerShoot creates the descending "pew" for player fire
func GeneratePlayerShoot(rate int) PCM {
	return Quantize(Sweep(
		constants.PlayerShootStartFreq,
		constants.PlayerShootEndFreq,
		constants.PlayerShootDuration,
		constants.PlayerShootGain,
		rate,
	))
}

// GenerateEnemyShoot creates the ascending sweep for enemy fire
func GenerateEnemyShoot(rate int) PCM {
	return Quantize(Sweep(
		constants.EnemyShootStartFreq,
		constants.EnemyShootEndFreq,
		constants.EnemyShootDuration,
		constants.EnemyShootGain,
		rate,
	))
}

// GenerateEnemyStep creates the low formation tick
func GenerateEnemyStep(rate int) PCM {
	return Quantize(Tone(constants.EnemyStepFreq, constants.EnemyStepDuration, rate))
}

// generateSound dispatches to specific generator
func generateSound(st core.SoundType, rate int) PCM {
	switch st {
	case core.SoundPlayerShoot:
		return GeneratePlayerShoot(rate)
	case core.SoundEnemyShoot:
		return GenerateEnemyShoot(rate)
	case core.SoundEnemyStep:
		return GenerateEnemyStep(rate)
	default:
		return nil
	}
}

// pcmStreamer replays a PCM buffer through beep without copying it
type pcmStreamer struct {
	pcm PCM
	pos int
}

// NewPCMStreamer wraps pcm as a one-shot beep.Streamer
func NewPCMStreamer(pcm PCM) beep.Streamer {
	return &pcmStreamer{pcm: pcm}
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.pcm) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.pcm) {
		f := s.pcm[s.pos]
		samples[n][0] = float64(f[0]) / (constants.AudioPeak + 1)
		samples[n][1] = float64(f[1]) / (constants.AudioPeak + 1)
		n++
		s.pos++
	}
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// GetSoundEffect returns a fresh streamer for a cached effect at the given linear volume
func GetSoundEffect(bank *Bank, st core.SoundType, vol float64) beep.Streamer {
	pcm := bank.Get(st)
	if len(pcm) == 0 {
		return nil
	}
	return newVolume(NewPCMStreamer(pcm), vol)
}
