package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// ProjectileSystem advances shots and culls the ones that left the world
type ProjectileSystem struct {
	sim *engine.Simulation
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(sim *engine.Simulation) engine.System {
	return &ProjectileSystem{sim: sim}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update moves both shot arenas and removes inactive shots in the same pass
func (s *ProjectileSystem) Update() {
	session := s.sim.Session()
	advance(session.PlayerShots)
	advance(session.EnemyShots)
}

func advance(shots *engine.Arena[components.ProjectileComponent]) {
	shots.Each(func(_ int, p *components.ProjectileComponent) {
		p.Advance()
	})
	shots.Compact(isActive)
}

func isActive(p *components.ProjectileComponent) bool {
	return p.Active
}
