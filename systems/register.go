package systems

import "github.com/lixenwraith/ascii-invaders/engine"

// RegisterAll adds the full frame pipeline to sim
func RegisterAll(sim *engine.Simulation) {
	sim.AddSystem(NewInputSystem(sim))
	sim.AddSystem(NewAnimationSystem(sim))
	sim.AddSystem(NewStepSoundSystem(sim))
	sim.AddSystem(NewFormationSystem(sim))
	sim.AddSystem(NewSpeedSystem(sim))
	sim.AddSystem(NewProjectileSystem(sim))
	sim.AddSystem(NewEnemyFireSystem(sim))
	sim.AddSystem(NewCollisionSystem(sim))
	sim.AddSystem(NewWinSystem(sim))
	sim.AddSystem(NewCooldownSystem(sim))
}
