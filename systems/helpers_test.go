package systems

import (
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// newTestSimulation builds a fully registered pipeline with enemy fire disabled
func newTestSimulation(mutate func(*engine.Config)) *engine.Simulation {
	cfg := engine.DefaultConfig()
	cfg.EnemyFireChance = 0
	cfg.Seed = 7
	if mutate != nil {
		mutate(&cfg)
	}
	sim := engine.NewSimulation(cfg)
	RegisterAll(sim)
	return sim
}

// countSounds counts sound events of type st
func countSounds(events []engine.GameEvent, st core.SoundType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == engine.EventSound && ev.Sound == st {
			n++
		}
	}
	return n
}

// killAllExcept kills every enemy whose index is not in keep
func killAllExcept(s *engine.Session, keep ...int) {
	for i := 0; i < s.Enemies.Len(); i++ {
		alive := false
		for _, k := range keep {
			if k == i {
				alive = true
			}
		}
		if !alive {
			s.Enemies.At(i).Kill()
		}
	}
}

// aimAtEnemy positions the player so a shot fired this frame lands inside enemy i
// after one frame of formation movement and projectile travel
func aimAtEnemy(s *engine.Session, i int) {
	e := s.Enemies.At(i)
	s.Player.X = e.X
	s.Player.Y = e.Y + 30
}
