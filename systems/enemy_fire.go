package systems

import (
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// EnemyFireSystem lets one bottom-of-column enemy shoot at random
type EnemyFireSystem struct {
	sim     *engine.Simulation
	bottoms []int // Reused index buffer
}

// NewEnemyFireSystem creates a new enemy fire system
func NewEnemyFireSystem(sim *engine.Simulation) engine.System {
	return &EnemyFireSystem{
		sim:     sim,
		bottoms: make([]int, 0, constants.EnemyCols),
	}
}

// Priority returns the system's priority
func (s *EnemyFireSystem) Priority() int {
	return constants.PriorityEnemyFire
}

// Update rolls the fire chance once per frame and picks a shooter uniformly
func (s *EnemyFireSystem) Update() {
	session := s.sim.Session()

	s.bottoms = BottomOfColumn(session.Enemies, s.bottoms[:0])
	if len(s.bottoms) == 0 {
		return
	}

	rng := s.sim.Rand()
	if rng.Float64() >= s.sim.Config().EnemyFireChance {
		return
	}

	shooter := session.Enemies.At(s.bottoms[rng.IntN(len(s.bottoms))])
	session.EnemyShots.Add(components.NewEnemyShot(shooter.Muzzle()))
	s.sim.PlaySound(core.SoundEnemyShoot)
}

// BottomOfColumn appends to dst the indices of living enemies with no living enemy
// below them in the same column
func BottomOfColumn(enemies *engine.Arena[components.EnemyComponent], dst []int) []int {
	n := enemies.Len()
	for i := 0; i < n; i++ {
		e := enemies.At(i)
		if !e.Alive {
			continue
		}

		bottom := true
		for j := 0; j < n; j++ {
			o := enemies.At(j)
			if o.Alive && o.X == e.X && o.Y > e.Y {
				bottom = false
				break
			}
		}
		if bottom {
			dst = append(dst, i)
		}
	}
	return dst
}
