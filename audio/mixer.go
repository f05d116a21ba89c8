package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer PCM
	pos    int
	volume float64
}

// Mixer sums active sounds and streams s16le stereo to a CLI player's stdin
type Mixer struct {
	output io.Writer
	bank   *Bank

	playQueue chan playRequest
	stopChan  chan struct{}
	stopped   atomic.Bool

	// Accessed only by mix goroutine
	active []activeSound

	played  atomic.Uint64
	dropped atomic.Uint64

	// Error signaling
	errChan chan error
}

type playRequest struct {
	sound  core.SoundType
	volume float64
}

// NewMixer creates a mixer writing to out
func NewMixer(out io.Writer, bank *Bank) *Mixer {
	return &Mixer{
		output:    out,
		bank:      bank,
		playQueue: make(chan playRequest, constants.AudioPlayQueueSize),
		stopChan:  make(chan struct{}),
		active:    make([]activeSound, 0, 8),
		errChan:   make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	go m.loop()
}

// Stop signals the mixer to halt
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
}

// Play queues a sound; never blocks, drops when the queue is full
func (m *Mixer) Play(st core.SoundType, vol float64) bool {
	if m.stopped.Load() {
		return false
	}

	select {
	case m.playQueue <- playRequest{sound: st, volume: vol}:
		return true
	default:
		m.dropped.Add(1)
		return false
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

// loop is the main mixing goroutine
func (m *Mixer) loop() {
	ticker := time.NewTicker(constants.AudioBufferDuration)
	defer ticker.Stop()

	mixBuf := make([][2]float64, constants.AudioBufferSamples)
	out := make([]byte, constants.AudioBufferSamples*constants.AudioBytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.activate(req)
			m.drainQueue(4)

		case <-ticker.C:
			m.fill(mixBuf, out)
			if _, err := m.output.Write(out); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// fill renders one tick of output; silence keeps the player's pipe fed
func (m *Mixer) fill(mixBuf [][2]float64, out []byte) {
	if len(m.active) == 0 {
		clear(out)
		return
	}
	clear(mixBuf)
	m.active = m.mixActive(mixBuf)
	floatToBytes(mixBuf, out)
}

// activate starts a queued request
func (m *Mixer) activate(req playRequest) {
	buf := m.bank.Get(req.sound)
	if len(buf) == 0 {
		return
	}
	m.active = append(m.active, activeSound{
		buffer: buf,
		volume: req.volume,
	})
	m.played.Add(1)
}

// drainQueue processes up to n additional queued requests
func (m *Mixer) drainQueue(n int) {
	for i := 0; i < n; i++ {
		select {
		case req := <-m.playQueue:
			m.activate(req)
		default:
			return
		}
	}
}

// mixActive mixes all active sounds into buf, returns remaining sounds
func (m *Mixer) mixActive(buf [][2]float64) []activeSound {
	remaining := m.active[:0]

	for i := range m.active {
		s := &m.active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			f := s.buffer[s.pos]
			buf[j][0] += float64(f[0]) / constants.AudioPeak * s.volume
			buf[j][1] += float64(f[1]) / constants.AudioPeak * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}

	return remaining
}

// floatToBytes converts float64 stereo to interleaved int16 LE bytes
// Applies soft limiting before hard clip
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			v = softLimit(v)
			i16 := int16(v * constants.AudioPeak)
			binary.LittleEndian.PutUint16(out[i*constants.AudioBytesPerFrame+ch*2:], uint16(i16))
		}
	}
}

// softLimit compresses peaks above 0.8 then hard clips to [-1, 1]
func softLimit(v float64) float64 {
	if v > 0.8 {
		v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
	}
	return core.Clamp(v, -1, 1)
}

// GetStats returns played and dropped counts
func (m *Mixer) GetStats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}
