package audio

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

func TestMixActiveSumsAndRetires(t *testing.T) {
	m := NewMixer(io.Discard, NewBank(testRate))
	m.active = []activeSound{
		{buffer: PCM{{32767, 32767}, {32767, 32767}}, volume: 0.25},
		{buffer: PCM{{32767, 32767}, {32767, 32767}, {32767, 32767}, {32767, 32767}}, volume: 0.5},
	}

	buf := make([][2]float64, 3)
	m.active = m.mixActive(buf)

	if buf[0][0] != 0.75 || buf[1][1] != 0.75 {
		t.Errorf("Expected overlapping sounds to sum to 0.75, got %v", buf)
	}
	if buf[2][0] != 0.5 {
		t.Errorf("Expected only the longer sound on frame 2, got %f", buf[2][0])
	}
	if len(m.active) != 1 {
		t.Fatalf("Expected finished sound to be retired, %d remain", len(m.active))
	}
	if m.active[0].pos != 3 {
		t.Errorf("Expected remaining sound at position 3, got %d", m.active[0].pos)
	}
}

func TestMixerFill(t *testing.T) {
	m := NewMixer(io.Discard, NewBank(testRate))
	mixBuf := make([][2]float64, 4)
	out := make([]byte, len(mixBuf)*constants.AudioBytesPerFrame)
	for i := range out {
		out[i] = 0xFF
	}

	m.fill(mixBuf, out)
	for i, b := range out {
		if b != 0 {
			t.Fatalf("Expected silence with nothing active, byte %d = %#x", i, b)
		}
	}

	m.active = []activeSound{{buffer: PCM{{32767, 32767}}, volume: 1}}
	m.fill(mixBuf, out)

	if left := int16(binary.LittleEndian.Uint16(out[0:])); left <= 0 {
		t.Errorf("Expected positive first sample, got %d", left)
	}
	for i := constants.AudioBytesPerFrame; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("Expected silence after the sound ended, byte %d = %#x", i, out[i])
		}
	}
	if len(m.active) != 0 {
		t.Errorf("Expected finished sound retired, %d remain", len(m.active))
	}
}

func TestFloatToBytesLimits(t *testing.T) {
	in := [][2]float64{{0, 0.5}, {5.0, -5.0}}
	out := make([]byte, len(in)*constants.AudioBytesPerFrame)
	floatToBytes(in, out)

	read := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*2:])) }

	if read(0) != 0 {
		t.Errorf("Expected silence, got %d", read(0))
	}
	if read(1) != 16383 {
		t.Errorf("Expected unlimited 0.5, got %d", read(1))
	}
	if read(2) <= 0 || read(2) > 32767 {
		t.Errorf("Expected positive limited sample, got %d", read(2))
	}
	if read(3) >= 0 || read(3) < -32767 {
		t.Errorf("Expected negative limited sample, got %d", read(3))
	}
}

func TestSoftLimitBounds(t *testing.T) {
	for _, v := range []float64{-100, -1, -0.9, 0, 0.9, 1, 100} {
		got := softLimit(v)
		if got < -1 || got > 1 {
			t.Errorf("softLimit(%f) = %f out of range", v, got)
		}
	}
	if softLimit(0.5) != 0.5 {
		t.Error("Expected values below threshold to pass through")
	}
}

func TestMixerQueueOverflowDrops(t *testing.T) {
	m := NewMixer(io.Discard, NewBank(testRate))

	// Not started: queue fills and further requests drop
	for i := 0; i < constants.AudioPlayQueueSize; i++ {
		if !m.Play(core.SoundEnemyStep, 1) {
			t.Fatalf("Request %d unexpectedly dropped", i)
		}
	}
	if m.Play(core.SoundEnemyStep, 1) {
		t.Error("Expected overflow request to be dropped")
	}

	_, dropped := m.GetStats()
	if dropped != 1 {
		t.Errorf("Expected 1 dropped request, got %d", dropped)
	}
}

func TestMixerPlayAfterStop(t *testing.T) {
	m := NewMixer(io.Discard, NewBank(testRate))
	m.Stop()
	m.Stop()

	if m.Play(core.SoundPlayerShoot, 1) {
		t.Error("Expected Play after Stop to be rejected")
	}
}

func TestMixerActivateIgnoresEmpty(t *testing.T) {
	m := NewMixer(io.Discard, NewBank(0))
	m.activate(playRequest{sound: core.SoundPlayerShoot, volume: 1})

	if len(m.active) != 0 {
		t.Error("Expected empty buffer not to be activated")
	}
	if played, _ := m.GetStats(); played != 0 {
		t.Errorf("Expected 0 played, got %d", played)
	}
}
