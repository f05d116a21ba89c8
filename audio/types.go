package audio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/ascii-invaders/core"
)

//go:generate go tool mockgen -destination=mocks/mock_player.go -package=mocks github.com/lixenwraith/ascii-invaders/audio Player

// Player defines the minimal audio interface used by the game loop
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	Close()
}

// StatsReporter is implemented by players that count queued and dropped sounds
type StatsReporter interface {
	GetStats() (played, dropped uint64)
}

// Output selects how sound reaches the user
type Output int

const (
	OutputAuto    Output = iota // Speaker, then CLI pipe
	OutputSpeaker               // beep speaker (oto device)
	OutputPipe                  // CLI player fed over stdin
	OutputOff                   // No audio at all
)

var outputNames = map[string]Output{
	"auto":    OutputAuto,
	"speaker": OutputSpeaker,
	"pipe":    OutputPipe,
	"off":     OutputOff,
}

// ParseOutput maps a flag/env value to an Output
func ParseOutput(s string) (Output, error) {
	if o, ok := outputNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return OutputAuto, fmt.Errorf("%w: %q", ErrUnknownOutput, s)
}

func (o Output) String() string {
	for name, v := range outputNames {
		if v == o {
			return name
		}
	}
	return "unknown"
}

// BackendType identifies the CLI audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrUnknownOutput  = errors.New("unknown audio output")
)
