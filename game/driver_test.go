package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-invaders/audio/mocks"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
	"github.com/lixenwraith/ascii-invaders/systems"
	"go.uber.org/mock/gomock"
)

func newTestDriver(t *testing.T, player *mocks.MockPlayer) (*Driver, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := engine.DefaultConfig()
	cfg.EnemyFireChance = 0
	cfg.Seed = 3
	sim := engine.NewSimulation(cfg)
	systems.RegisterAll(sim)

	clock := core.NewMockTimeProvider(time.Unix(1000, 0))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDriver(screen, sim, player, clock, logger), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDriverFirePlaysSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().IsMuted().Return(false).AnyTimes()
	player.EXPECT().Play(core.SoundPlayerShoot).Return(true).Times(1)

	d, screen := newTestDriver(t, player)

	if !d.HandleEvent(key(' ')) {
		t.Fatal("Fire must not quit")
	}
	d.Frame()

	if d.sim.Session().PlayerShots.Len() != 1 {
		t.Errorf("Expected one shot in flight, got %d", d.sim.Session().PlayerShots.Len())
	}

	// Shot drawn on screen after present
	col, row := d.renderer.ToCell(d.sim.Session().PlayerShots.At(0).X, d.sim.Session().PlayerShots.At(0).Y)
	if ch, _, _, _ := screen.GetContent(col, row); ch != '|' {
		t.Errorf("Expected shot glyph at (%d,%d), got %q", col, row, ch)
	}
}

func TestDriverQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _ := newTestDriver(t, mocks.NewMockPlayer(ctrl))

	for _, ev := range []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if d.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev)
		}
	}
}

func TestDriverToggleMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().ToggleMute().Return(false).Times(1)

	d, _ := newTestDriver(t, player)

	if !d.HandleEvent(key('m')) {
		t.Error("Mute must not quit")
	}
}

func TestDriverRestartOnlyAfterSessionEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().IsMuted().Return(true).AnyTimes()

	d, _ := newTestDriver(t, player)
	first := d.sim.Session()

	d.HandleEvent(key('r'))
	if d.sim.Session() != first {
		t.Fatal("Restart must be ignored while playing")
	}

	d.sim.End(engine.PhaseGameOver)
	d.Frame()

	d.HandleEvent(key('r'))
	if d.sim.Session() == first {
		t.Fatal("Expected a fresh session after restart")
	}
	if !d.sim.Session().Playing() {
		t.Error("Expected Playing after restart")
	}
}

func TestDriverFrameFrozenAfterGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().IsMuted().Return(false).AnyTimes()

	d, _ := newTestDriver(t, player)
	d.sim.End(engine.PhaseGameOver)

	x := d.sim.Session().Player.X
	d.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	d.Frame()

	if d.sim.Session().Player.X != x {
		t.Error("Player must not move after GameOver")
	}
}

func TestDriverRunQuitsOnKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().IsMuted().Return(false).AnyTimes()
	player.EXPECT().Play(gomock.Any()).Return(true).AnyTimes()

	d, screen := newTestDriver(t, player)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := d.Run(ctx); err != nil {
		t.Errorf("Expected clean quit, got %v", err)
	}
}

func TestDriverRunCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().IsMuted().Return(false).AnyTimes()
	player.EXPECT().Play(gomock.Any()).Return(true).AnyTimes()

	d, _ := newTestDriver(t, player)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := d.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
