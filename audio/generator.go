package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// Frame is one stereo sample pair (left, right)
type Frame [2]int16

// PCM is stereo signed 16-bit audio, immutable once generated
type PCM []Frame

// Duration returns playback length at rate
func (p PCM) Duration(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(len(p)) * time.Second / time.Duration(rate)
}

// sampleCount converts duration to samples, rounding half to even; degenerate input yields 0
func sampleCount(d time.Duration, rate int) int {
	if d <= 0 || rate <= 0 {
		return 0
	}
	return int(math.RoundToEven(d.Seconds() * float64(rate)))
}

// linspace returns element i of n evenly spaced values over [start, stop]
func linspace(start, stop float64, n, i int) float64 {
	if n <= 1 {
		return start
	}
	return start + (stop-start)*float64(i)/float64(n-1)
}

// Tone generates a flat sine at unity amplitude with linear fades at both edges
func Tone(freq float64, d time.Duration, rate int) []float64 {
	n := sampleCount(d, rate)
	if n == 0 {
		return nil
	}

	buf := make([]float64, n)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * float64(i) * freq / float64(rate))
	}

	fade := int(float64(rate) * constants.ToneFadeDuration.Seconds())
	if fade > n/2 {
		fade = n / 2
	}
	applyFade(buf, fade)
	return buf
}

// applyFade ramps the first and last fade samples between 0 and 1 in place
func applyFade(buf []float64, fade int) {
	n := len(buf)
	for i := 0; i < fade; i++ {
		g := linspace(0, 1, fade, i)
		buf[i] *= g
		buf[n-1-i] *= g
	}
}

// sweepPhases integrates the linear frequency ramp f0->f1 into running phase (radians)
func sweepPhases(f0, f1 float64, n, rate int) []float64 {
	if n <= 0 || rate <= 0 {
		return nil
	}
	phases := make([]float64, n)
	theta := 0.0
	for i := 0; i < n; i++ {
		theta += 2 * math.Pi * linspace(f0, f1, n, i) / float64(rate)
		phases[i] = theta
	}
	return phases
}

// Sweep generates a linear frequency sweep with a full 1->0 decay envelope scaled by gain
// The final sample is exactly zero for any buffer longer than one sample
func Sweep(f0, f1 float64, d time.Duration, gain float64, rate int) []float64 {
	n := sampleCount(d, rate)
	if n == 0 {
		return nil
	}

	phases := sweepPhases(f0, f1, n, rate)
	buf := make([]float64, n)
	for i, p := range phases {
		buf[i] = math.Sin(p) * gain * linspace(1, 0, n, i)
	}
	return buf
}

// Quantize converts mono float samples to stereo s16 by truncation after clamping to [-1, 1]
func Quantize(mono []float64) PCM {
	pcm := make(PCM, len(mono))
	for i, v := range mono {
		s := int16(core.Clamp(v, -1, 1) * constants.AudioPeak)
		pcm[i] = Frame{s, s}
	}
	return pcm
}
