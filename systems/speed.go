package systems

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// SpeedSystem scales formation speed with the number of dead enemies
type SpeedSystem struct {
	sim *engine.Simulation
}

// NewSpeedSystem creates a new speed system
func NewSpeedSystem(sim *engine.Simulation) engine.System {
	return &SpeedSystem{sim: sim}
}

// Priority returns the system's priority
func (s *SpeedSystem) Priority() int {
	return constants.PrioritySpeed
}

// Update recomputes speed; an empty formation keeps the last value
func (s *SpeedSystem) Update() {
	session := s.sim.Session()
	if session.AliveEnemies() == 0 {
		return
	}
	session.Speed = FormationSpeed(session.Killed())
}

// FormationSpeed returns the enemy speed after killed enemies died
func FormationSpeed(killed int) float64 {
	return constants.EnemyBaseSpeed + float64(killed)*constants.EnemySpeedStep
}
