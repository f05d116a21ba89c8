package systems

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// StepSoundSystem plays the formation step at a cadence that quickens as enemies die
type StepSoundSystem struct {
	sim *engine.Simulation
}

// NewStepSoundSystem creates a new step sound system
func NewStepSoundSystem(sim *engine.Simulation) engine.System {
	return &StepSoundSystem{sim: sim}
}

// Priority returns the system's priority
func (s *StepSoundSystem) Priority() int {
	return constants.PriorityStepSound
}

// Update counts frames and emits the step sound on each interval
func (s *StepSoundSystem) Update() {
	session := s.sim.Session()
	session.StepTimer++

	if session.StepTimer >= StepInterval(session.Killed()) {
		s.sim.PlaySound(core.SoundEnemyStep)
		session.StepTimer = 0
	}
}

// StepInterval returns frames between step sounds after killed enemies died
func StepInterval(killed int) int {
	return max(constants.StepSoundMinInterval, constants.StepSoundInterval-killed)
}
