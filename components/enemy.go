package components

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// EnemyComponent is one formation member
// Dead enemies stay in their arena slot so grid indices stay stable
type EnemyComponent struct {
	X, Y      float64
	Alive     bool
	Animation int // Frame counter, visual only
}

// NewEnemy creates a living enemy at (x, y)
func NewEnemy(x, y float64) EnemyComponent {
	return EnemyComponent{X: x, Y: y, Alive: true}
}

// Tick advances the animation counter of a living enemy
func (e *EnemyComponent) Tick() {
	if e.Alive {
		e.Animation++
	}
}

// Frame returns the index into EnemyArt: first half of each period shows frame 0
func (e EnemyComponent) Frame() int {
	if e.Animation%constants.EnemyAnimationPeriod < constants.EnemyAnimationPeriod/2 {
		return 0
	}
	return 1
}

// Kill marks the enemy dead; there is no way back within a session
func (e *EnemyComponent) Kill() {
	e.Alive = false
}

// Rect returns the collision rectangle
func (e EnemyComponent) Rect() core.Rect {
	return core.Rect{X: e.X, Y: e.Y, Width: constants.EnemyWidth, Height: constants.EnemyHeight}
}

// Muzzle returns the spawn point of a shot fired by this enemy
func (e EnemyComponent) Muzzle() (x, y float64) {
	return e.X + constants.ShotOffsetX, e.Y + constants.EnemyShotOffsetY
}
