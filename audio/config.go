package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "ASCII_INVADERS_AUDIO_ENABLED"
	EnvMasterVolume = "ASCII_INVADERS_MASTER_VOLUME"
	EnvSFXVolumes   = "ASCII_INVADERS_SFX_VOLUMES"
	EnvAudioBackend = "ASCII_INVADERS_AUDIO_BACKEND"
)

// AudioConfig holds playback settings; synthesis parameters live in constants
type AudioConfig struct {
	Enabled       bool // false starts muted
	Output        Output
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns unmuted full-volume settings at the synthesis rate
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[core.SoundType]float64, core.SoundTypeCount)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		vols[st] = 1.0
	}
	return &AudioConfig{
		Enabled:       true,
		Output:        OutputAuto,
		MasterVolume:  1.0,
		EffectVolumes: vols,
		SampleRate:    constants.AudioSampleRate,
	}
}

// Volume returns the effective linear gain for st
func (c *AudioConfig) Volume(st core.SoundType) float64 {
	vol := c.MasterVolume
	if ev, ok := c.EffectVolumes[st]; ok {
		vol *= ev
	}
	return vol
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and leave the default in place
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = core.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Load effect volumes from JSON
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := core.ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = core.Clamp(v, 0, 1)
				}
			}
		}
	}

	if backend := os.Getenv(EnvAudioBackend); backend != "" {
		if out, err := ParseOutput(backend); err == nil {
			cfg.Output = out
		}
	}

	return cfg
}
