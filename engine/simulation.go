package engine

import (
	"math/rand/v2"
	"sort"

	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/core"
)

// System is one step of the per-frame pipeline
type System interface {
	Priority() int // Lower values run first
	Update()
}

// Input is the control state sampled once per frame
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Simulation owns the current Session and runs systems over it
// Not safe for concurrent use; the game loop is the only caller
type Simulation struct {
	config  Config
	session *Session
	systems []System
	events  *EventQueue
	rng     *rand.Rand
	input   Input
}

// NewSimulation creates a simulation with a fresh session and no systems
func NewSimulation(cfg Config) *Simulation {
	var rng *rand.Rand
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	return &Simulation{
		config:  cfg,
		session: NewSession(cfg),
		events:  NewEventQueue(),
		rng:     rng,
	}
}

// AddSystem registers a system, keeping the pipeline sorted by priority
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// Update runs one frame of the pipeline; returns false when not Playing
// The pipeline stops at the first system that ends the session
func (s *Simulation) Update(in Input) bool {
	if !s.session.Playing() {
		return false
	}

	s.input = in
	s.session.Frame++

	for _, sys := range s.systems {
		sys.Update()
		if !s.session.Playing() {
			break
		}
	}
	return true
}

// Reset swaps in a fresh session; systems and the RNG carry over
func (s *Simulation) Reset() {
	s.session = NewSession(s.config)
	s.events.Push(GameEvent{Type: EventSessionStarted})
}

// Session returns the current session; the pointer changes on Reset
func (s *Simulation) Session() *Session {
	return s.session
}

// Config returns the tuning the simulation was built with
func (s *Simulation) Config() Config {
	return s.config
}

// Input returns the control state of the frame being updated
func (s *Simulation) Input() Input {
	return s.input
}

// Rand returns the simulation RNG
func (s *Simulation) Rand() *rand.Rand {
	return s.rng
}

// PlaySound queues a sound request for the game loop
func (s *Simulation) PlaySound(st core.SoundType) {
	s.events.Push(GameEvent{Type: EventSound, Sound: st, Frame: s.session.Frame})
}

// End moves the session to a terminal phase and reports the transition
func (s *Simulation) End(p Phase) {
	if s.session.end(p) {
		s.events.Push(GameEvent{Type: EventPhaseChanged, Phase: p, Frame: s.session.Frame})
	}
}

// ConsumeEvents drains events pushed since the last call
func (s *Simulation) ConsumeEvents() []GameEvent {
	return s.events.Consume()
}

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Player      components.PlayerComponent
	Enemies     []components.EnemyComponent
	PlayerShots []components.ProjectileComponent
	EnemyShots  []components.ProjectileComponent
	Score       int
	Phase       Phase
}

// Snapshot copies the current session for rendering
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Player:      s.session.Player,
		Enemies:     s.session.Enemies.Snapshot(),
		PlayerShots: s.session.PlayerShots.Snapshot(),
		EnemyShots:  s.session.EnemyShots.Snapshot(),
		Score:       s.session.Score,
		Phase:       s.session.Phase,
	}
}
