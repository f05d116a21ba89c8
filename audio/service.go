package audio

import (
	"fmt"

	"github.com/lixenwraith/ascii-invaders/core"
)

// Open starts the output selected by cfg.Output and returns it with a backend label
// OutputAuto tries the beep speaker first and falls back to a CLI pipe player
// A disabled config yields a SilentPlayer without touching any device
func Open(cfg *AudioConfig, bank *Bank) (Player, string, error) {
	if !cfg.Enabled {
		return &SilentPlayer{}, "off", nil
	}

	switch cfg.Output {
	case OutputOff:
		return &SilentPlayer{}, "off", nil

	case OutputSpeaker:
		sm := NewSoundManager(bank, cfg)
		if err := sm.Initialize(); err != nil {
			return nil, "", fmt.Errorf("speaker: %w", err)
		}
		return sm, "speaker", nil

	case OutputPipe:
		pe := NewPipeEngine(cfg, bank)
		if err := pe.Start(); err != nil {
			return nil, "", fmt.Errorf("pipe: %w", err)
		}
		return pe, "pipe:" + pe.BackendName(), nil

	default:
		sm := NewSoundManager(bank, cfg)
		speakerErr := sm.Initialize()
		if speakerErr == nil {
			return sm, "speaker", nil
		}

		pe := NewPipeEngine(cfg, bank)
		pipeErr := pe.Start()
		if pipeErr == nil {
			return pe, "pipe:" + pe.BackendName(), nil
		}

		return nil, "", fmt.Errorf("%w (speaker: %v; pipe: %v)", ErrNoAudioBackend, speakerErr, pipeErr)
	}
}

// SilentPlayer satisfies Player when audio output is switched off
type SilentPlayer struct{}

// Play never produces sound
func (SilentPlayer) Play(core.SoundType) bool { return false }

// ToggleMute cannot unmute a disabled output
func (SilentPlayer) ToggleMute() bool { return false }

// IsMuted always reports true
func (SilentPlayer) IsMuted() bool { return true }

// Close is a no-op
func (SilentPlayer) Close() {}
