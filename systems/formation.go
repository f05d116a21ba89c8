package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// FormationSystem moves the enemy formation and bounces it off the world edges
type FormationSystem struct {
	sim *engine.Simulation
}

// NewFormationSystem creates a new formation system
func NewFormationSystem(sim *engine.Simulation) engine.System {
	return &FormationSystem{sim: sim}
}

// Priority returns the system's priority
func (s *FormationSystem) Priority() int {
	return constants.PriorityFormation
}

// Update shifts living enemies horizontally; touching an edge flips direction and drops the
// whole formation in the same frame, ending the game once it reaches the player's row
func (s *FormationSystem) Update() {
	session := s.sim.Session()
	dx := session.Direction * session.Speed
	edge := false

	session.Enemies.Each(func(_ int, e *components.EnemyComponent) {
		if !e.Alive {
			return
		}
		e.X += dx
		if e.X <= 0 || e.X >= constants.ScreenWidth-constants.EnemyWidth {
			edge = true
		}
	})

	if !edge {
		return
	}

	session.Direction = -session.Direction
	reached := false
	session.Enemies.Each(func(_ int, e *components.EnemyComponent) {
		if !e.Alive {
			return
		}
		e.Y += constants.EnemyDropStep
		if e.Y >= session.Player.Y {
			reached = true
		}
	})

	if reached {
		s.sim.End(engine.PhaseGameOver)
	}
}
