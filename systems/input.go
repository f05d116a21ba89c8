package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// InputSystem applies the frame's controls to the player
type InputSystem struct {
	sim *engine.Simulation
}

// NewInputSystem creates a new input system
func NewInputSystem(sim *engine.Simulation) engine.System {
	return &InputSystem{sim: sim}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update moves the player and fires when the cooldown allows
func (s *InputSystem) Update() {
	session := s.sim.Session()
	in := s.sim.Input()

	if in.Left {
		session.Player.MoveLeft()
	}
	if in.Right {
		session.Player.MoveRight()
	}

	if in.Fire && session.FireCooldown <= 0 {
		session.PlayerShots.Add(components.NewPlayerShot(session.Player.Muzzle()))
		session.FireCooldown = s.sim.Config().FireCooldown
		s.sim.PlaySound(core.SoundPlayerShoot)
	}
}
