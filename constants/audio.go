package constants

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 22050
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes

	// AudioPeak is the int16 full-scale multiplier
	AudioPeak = 32767
)

// Audio Engine Timing
const (
	// AudioBufferDuration is the pipe mixer tick; it must hold a whole number of
	// frames at AudioSampleRate or the CLI player slowly underruns
	AudioBufferDuration = 20 * time.Millisecond

	// AudioBufferSamples is frames per pipe mixer tick
	AudioBufferSamples = AudioSampleRate * int(AudioBufferDuration/time.Millisecond) / 1000 // 441

	// AudioSpeakerLatency sizes the beep speaker buffer
	AudioSpeakerLatency = 100 * time.Millisecond

	// AudioPlayQueueSize bounds pending play requests before drops
	AudioPlayQueueSize = 32
)

// Envelope
const (
	// ToneFadeDuration is the linear fade-in/out on flat tones
	ToneFadeDuration = 10 * time.Millisecond
)

// Player Shoot Sound
const (
	PlayerShootDuration  = 150 * time.Millisecond
	PlayerShootStartFreq = 800.0
	PlayerShootEndFreq   = 200.0
	PlayerShootGain      = 0.3
)

// Enemy Shoot Sound
const (
	EnemyShootDuration  = 150 * time.Millisecond
	EnemyShootStartFreq = 200.0
	EnemyShootEndFreq   = 600.0
	EnemyShootGain      = 0.25
)

// Enemy Step Sound
const (
	EnemyStepDuration = 50 * time.Millisecond
	EnemyStepFreq     = 150.0
)
