package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/ascii-invaders/core"
)

// PipeEngine plays sounds by streaming mixed PCM into a system CLI player
type PipeEngine struct {
	config *AudioConfig
	bank   *Bank
	mixer  *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // For direct OSS writes

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewPipeEngine creates an engine; muted when cfg disables audio
func NewPipeEngine(cfg *AudioConfig, bank *Bank) *PipeEngine {
	pe := &PipeEngine{
		config: cfg,
		bank:   bank,
	}
	pe.muted.Store(!cfg.Enabled)
	return pe
}

// Start launches the audio backend and mixer
func (pe *PipeEngine) Start() error {
	if pe.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	backend, err := DetectBackend(pe.bank.SampleRate())
	if err != nil {
		return err
	}
	pe.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		// Direct file write for OSS
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", backend.Path, err)
		}
		pe.ossFile = f
		writer = f
	} else {
		// Exec-based backend
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return fmt.Errorf("%s stdin: %w", backend.Name, err)
		}

		if err := cmd.Start(); err != nil {
			stdin.Close()
			return fmt.Errorf("start %s: %w", backend.Name, err)
		}

		pe.cmd = cmd
		pe.stdin = stdin
		writer = stdin

		// Monitor process
		pe.wg.Add(1)
		go pe.monitorProcess()
	}

	pe.mixer = NewMixer(writer, pe.bank)
	pe.mixer.Start()

	// Monitor mixer errors
	pe.wg.Add(1)
	go pe.monitorMixer()

	pe.running.Store(true)
	return nil
}

// monitorProcess watches for subprocess exit; a dead player degrades to silence
func (pe *PipeEngine) monitorProcess() {
	defer pe.wg.Done()

	if pe.cmd == nil {
		return
	}

	err := pe.cmd.Wait()
	if err != nil && pe.running.Load() {
		pe.silentMode.Store(true)
	}
}

// monitorMixer watches for pipe errors
func (pe *PipeEngine) monitorMixer() {
	defer pe.wg.Done()

	select {
	case <-pe.mixer.Errors():
		pe.silentMode.Store(true)
	case <-pe.mixer.stopChan:
	}
}

// Close terminates the engine
func (pe *PipeEngine) Close() {
	if !pe.running.CompareAndSwap(true, false) {
		return
	}

	if pe.mixer != nil {
		pe.mixer.Stop()
	}

	if pe.stdin != nil {
		pe.stdin.Close()
	}

	if pe.ossFile != nil {
		pe.ossFile.Close()
	}

	if pe.cmd != nil && pe.cmd.Process != nil {
		pe.cmd.Process.Kill()
	}

	pe.wg.Wait()
}

// Play queues a sound for playback
func (pe *PipeEngine) Play(st core.SoundType) bool {
	if !pe.running.Load() || pe.muted.Load() || pe.silentMode.Load() {
		return false
	}
	if pe.mixer == nil {
		return false
	}
	return pe.mixer.Play(st, pe.config.Volume(st))
}

// ToggleMute toggles mute state, returns true if now audible
func (pe *PipeEngine) ToggleMute() bool {
	newMute := !pe.muted.Load()
	pe.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (pe *PipeEngine) IsMuted() bool {
	return pe.muted.Load()
}

// BackendName returns the detected CLI player, empty before Start
func (pe *PipeEngine) BackendName() string {
	if pe.backend == nil {
		return ""
	}
	return pe.backend.Name
}

// GetStats returns played and dropped counts
func (pe *PipeEngine) GetStats() (played, dropped uint64) {
	if pe.mixer != nil {
		return pe.mixer.GetStats()
	}
	return 0, 0
}
