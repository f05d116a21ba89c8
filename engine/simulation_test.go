package engine

import (
	"testing"

	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// recordingSystem appends its id to a shared log on every update
type recordingSystem struct {
	id       int
	priority int
	log      *[]int
	onUpdate func()
}

func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Update() {
	*s.log = append(*s.log, s.id)
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func TestNewSessionFormation(t *testing.T) {
	s := NewSession(DefaultConfig())

	if s.Enemies.Len() != 21 || s.InitialEnemies != 21 {
		t.Fatalf("Expected 21 enemies, got %d (initial %d)", s.Enemies.Len(), s.InitialEnemies)
	}

	first := s.Enemies.At(0)
	if first.X != constants.EnemyOffsetX || first.Y != constants.EnemyOffsetY {
		t.Errorf("Expected first enemy at (50,30), got (%f,%f)", first.X, first.Y)
	}
	last := s.Enemies.At(20)
	if last.X != 650 || last.Y != 190 {
		t.Errorf("Expected last enemy at (650,190), got (%f,%f)", last.X, last.Y)
	}

	if !s.Playing() || s.Score != 0 || s.Direction != 1 || s.Speed != 1 {
		t.Errorf("Unexpected initial session state: %+v", s)
	}
	if s.Player.X != constants.PlayerStartX || s.Player.Y != constants.PlayerY {
		t.Errorf("Unexpected player start (%f,%f)", s.Player.X, s.Player.Y)
	}
	if s.AliveEnemies() != 21 || s.Killed() != 0 {
		t.Errorf("Expected all alive, got %d alive", s.AliveEnemies())
	}
}

func TestSessionEndFirstWins(t *testing.T) {
	s := NewSession(DefaultConfig())

	if !s.end(PhaseGameOver) {
		t.Fatal("Expected transition to GameOver")
	}
	if s.end(PhaseWin) {
		t.Error("Terminal phase must not change")
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("Expected GameOver, got %v", s.Phase)
	}
}

func TestSimulationPriorityOrder(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	var log []int

	sim.AddSystem(&recordingSystem{id: 3, priority: 30, log: &log})
	sim.AddSystem(&recordingSystem{id: 1, priority: 10, log: &log})
	sim.AddSystem(&recordingSystem{id: 2, priority: 20, log: &log})

	if !sim.Update(Input{}) {
		t.Fatal("Expected update while playing")
	}

	if len(log) != 3 || log[0] != 1 || log[1] != 2 || log[2] != 3 {
		t.Errorf("Expected order [1 2 3], got %v", log)
	}
	if sim.Session().Frame != 1 {
		t.Errorf("Expected frame 1, got %d", sim.Session().Frame)
	}
}

func TestSimulationHaltsOnTerminalPhase(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	var log []int

	sim.AddSystem(&recordingSystem{id: 1, priority: 10, log: &log, onUpdate: func() { sim.End(PhaseGameOver) }})
	sim.AddSystem(&recordingSystem{id: 2, priority: 20, log: &log})

	sim.Update(Input{})
	if len(log) != 1 {
		t.Errorf("Expected pipeline to stop after first system, ran %v", log)
	}

	// Further updates are rejected
	if sim.Update(Input{Left: true}) {
		t.Error("Expected no update after GameOver")
	}
	if len(log) != 1 {
		t.Errorf("Expected no systems to run after GameOver, ran %v", log)
	}

	events := sim.ConsumeEvents()
	if len(events) != 1 || events[0].Type != EventPhaseChanged || events[0].Phase != PhaseGameOver {
		t.Errorf("Expected one PhaseChanged event, got %+v", events)
	}
}

func TestSimulationReset(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	old := sim.Session()

	old.Score = 120
	old.Enemies.At(0).Kill()
	old.PlayerShots.Add(components.NewPlayerShot(10, 10))
	sim.End(PhaseWin)
	sim.ConsumeEvents()

	sim.Reset()
	s := sim.Session()

	if s == old {
		t.Fatal("Expected a fresh session value")
	}
	if s.ID == old.ID {
		t.Error("Expected a new session id")
	}
	if !s.Playing() || s.Score != 0 || s.PlayerShots.Len() != 0 || s.AliveEnemies() != 21 {
		t.Errorf("Session not reset: phase=%v score=%d shots=%d alive=%d",
			s.Phase, s.Score, s.PlayerShots.Len(), s.AliveEnemies())
	}

	events := sim.ConsumeEvents()
	if len(events) != 1 || events[0].Type != EventSessionStarted {
		t.Errorf("Expected SessionStarted event, got %+v", events)
	}
}

func TestSimulationPlaySound(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	sim.PlaySound(core.SoundEnemyShoot)

	events := sim.ConsumeEvents()
	if len(events) != 1 || events[0].Type != EventSound || events[0].Sound != core.SoundEnemyShoot {
		t.Errorf("Expected enemy shoot sound event, got %+v", events)
	}
}

func TestSimulationSnapshotIsolation(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	snap := sim.Snapshot()

	sim.Session().Enemies.At(0).Kill()
	sim.Session().Score = 10

	if !snap.Enemies[0].Alive || snap.Score != 0 {
		t.Error("Snapshot must not observe later mutation")
	}
	if len(snap.Enemies) != 21 || snap.Phase != PhasePlaying {
		t.Errorf("Unexpected snapshot: %d enemies, phase %v", len(snap.Enemies), snap.Phase)
	}
}

func TestSimulationSeedDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	a := NewSimulation(cfg).Rand()
	b := NewSimulation(cfg).Rand()
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed must produce same sequence")
		}
	}
}
