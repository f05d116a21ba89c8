package systems

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// WinSystem ends the session once every enemy is dead
type WinSystem struct {
	sim *engine.Simulation
}

// NewWinSystem creates a new win system
func NewWinSystem(sim *engine.Simulation) engine.System {
	return &WinSystem{sim: sim}
}

// Priority returns the system's priority
func (s *WinSystem) Priority() int {
	return constants.PriorityWin
}

// Update checks the formation
func (s *WinSystem) Update() {
	if s.sim.Session().AliveEnemies() == 0 {
		s.sim.End(engine.PhaseWin)
	}
}
