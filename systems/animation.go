package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// AnimationSystem advances enemy art frames
type AnimationSystem struct {
	sim *engine.Simulation
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(sim *engine.Simulation) engine.System {
	return &AnimationSystem{sim: sim}
}

// Priority returns the system's priority
func (s *AnimationSystem) Priority() int {
	return constants.PriorityAnimation
}

// Update ticks every enemy; dead enemies ignore the tick
func (s *AnimationSystem) Update() {
	s.sim.Session().Enemies.Each(func(_ int, e *components.EnemyComponent) {
		e.Tick()
	})
}
