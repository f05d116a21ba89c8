package systems

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// CooldownSystem counts down the player fire cooldown
// It runs last, so a frame that ends the session leaves the cooldown untouched
type CooldownSystem struct {
	sim *engine.Simulation
}

// NewCooldownSystem creates a new cooldown system
func NewCooldownSystem(sim *engine.Simulation) engine.System {
	return &CooldownSystem{sim: sim}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CooldownSystem) Priority() int {
	return constants.PriorityCooldown
}

// Update decrements the cooldown toward zero
func (s *CooldownSystem) Update() {
	session := s.sim.Session()
	if session.FireCooldown > 0 {
		session.FireCooldown--
	}
}
