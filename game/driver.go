// Package game drives the frame loop: terminal events in, simulation step,
// sound dispatch, render, present.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-invaders/audio"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
	"github.com/lixenwraith/ascii-invaders/input"
	"github.com/lixenwraith/ascii-invaders/render"
)

// Driver owns the loop; all simulation and rendering happen on the Run goroutine
type Driver struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	renderer *render.TerminalRenderer
	tracker  *input.Tracker
	player   audio.Player
	logger   *slog.Logger
}

// NewDriver wires a driver; a nil logger falls back to slog.Default()
func NewDriver(screen tcell.Screen, sim *engine.Simulation, player audio.Player, clock core.TimeProvider, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		screen:   screen,
		sim:      sim,
		renderer: render.NewTerminalRenderer(screen),
		tracker:  input.NewTracker(input.DefaultKeyTable(), clock),
		player:   player,
		logger:   logger,
	}
}

// HandleEvent applies one terminal event; returns false when the game should quit
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch d.tracker.HandleEvent(ev) {
	case input.IntentQuit:
		d.logger.Info("quit requested", "session", d.sim.Session().ID, "score", d.sim.Session().Score)
		return false

	case input.IntentRestart:
		// Restart is only honored once the session is over
		if d.sim.Session().Playing() {
			return true
		}
		d.sim.Reset()
		d.tracker.Release()

	case input.IntentToggleMute:
		audible := d.player.ToggleMute()
		d.logger.Info("mute toggled", "audible", audible)

	case input.IntentResize:
		d.screen.Sync()
		d.renderer.UpdateDimensions(d.screen.Size())
	}
	return true
}

// Frame runs one loop iteration: simulate if playing, dispatch events, render, present
func (d *Driver) Frame() {
	d.sim.Update(d.tracker.Sample())
	d.dispatch()
	d.renderer.RenderFrame(d.sim.Snapshot(), d.player.IsMuted())
	d.screen.Show()
}

// dispatch plays requested sounds and logs lifecycle events
func (d *Driver) dispatch() {
	for _, ev := range d.sim.ConsumeEvents() {
		switch ev.Type {
		case engine.EventSound:
			d.player.Play(ev.Sound)
		case engine.EventPhaseChanged:
			s := d.sim.Session()
			d.logger.Info("session ended",
				"session", s.ID,
				"phase", ev.Phase.String(),
				"score", s.Score,
				"frame", ev.Frame,
			)
		case engine.EventSessionStarted:
			d.logger.Info("session started", "session", d.sim.Session().ID)
		}
	}
}

// Run drives the loop at TargetFPS until quit or ctx cancellation
// Returns nil on quit and ctx.Err() on cancellation
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.TerminalEventBuffer)
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks; it returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	d.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			d.Frame()
		}
	}
}
