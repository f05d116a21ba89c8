package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// CollisionSystem resolves shot hits against enemies and the player
type CollisionSystem struct {
	sim *engine.Simulation
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(sim *engine.Simulation) engine.System {
	return &CollisionSystem{sim: sim}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update checks player shots first; clearing the formation wins before enemy shots are checked
func (s *CollisionSystem) Update() {
	session := s.sim.Session()

	session.PlayerShots.Each(func(_ int, shot *components.ProjectileComponent) {
		if !shot.Active {
			return
		}
		n := session.Enemies.Len()
		for i := 0; i < n; i++ {
			e := session.Enemies.At(i)
			if !e.Alive || !e.Rect().ContainsStrict(shot.X, shot.Y) {
				continue
			}
			// One shot kills at most one enemy
			e.Kill()
			shot.Active = false
			session.Score += constants.KillScore
			break
		}
	})
	session.PlayerShots.Compact(isActive)

	if session.AliveEnemies() == 0 {
		s.sim.End(engine.PhaseWin)
		return
	}

	player := session.Player.Rect()
	hit := false
	session.EnemyShots.Each(func(_ int, shot *components.ProjectileComponent) {
		if !shot.Active || !player.ContainsStrict(shot.X, shot.Y) {
			return
		}
		hit = true
		if s.sim.Config().RemoveHitShot {
			shot.Active = false
		}
	})
	session.EnemyShots.Compact(isActive)

	if hit {
		s.sim.End(engine.PhaseGameOver)
	}
}
