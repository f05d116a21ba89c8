package audio

import (
	"log/slog"

	"github.com/lixenwraith/ascii-invaders/core"
)

// Bank stores pre-generated effect buffers
// Buffers are generated once and never mutated, so playback sites share them freely
type Bank struct {
	rate  int
	store [core.SoundTypeCount]PCM
}

// NewBank synthesizes every effect at rate
func NewBank(rate int) *Bank {
	b := &Bank{rate: rate}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		b.store[st] = generateSound(st, rate)
	}
	return b
}

// Get returns the cached buffer, nil for unknown types
func (b *Bank) Get(st core.SoundType) PCM {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	return b.store[st]
}

// SampleRate returns the rate the bank was synthesized at
func (b *Bank) SampleRate() int {
	return b.rate
}

// LogValue reports each effect's playback length, logged once at startup
func (b *Bank) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, core.SoundTypeCount)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		attrs = append(attrs, slog.Duration(st.String(), b.store[st].Duration(b.rate)))
	}
	return slog.GroupValue(attrs...)
}
