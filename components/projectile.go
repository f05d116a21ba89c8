package components

import "github.com/lixenwraith/ascii-invaders/constants"

// ProjectileComponent is a shot in flight
// Negative Velocity travels up (player), positive travels down (enemy)
type ProjectileComponent struct {
	X, Y     float64
	Velocity float64
	Active   bool
}

// NewPlayerShot creates an upward shot at (x, y)
func NewPlayerShot(x, y float64) ProjectileComponent {
	return ProjectileComponent{X: x, Y: y, Velocity: constants.PlayerShotVelocity, Active: true}
}

// NewEnemyShot creates a downward shot at (x, y)
func NewEnemyShot(x, y float64) ProjectileComponent {
	return ProjectileComponent{X: x, Y: y, Velocity: constants.EnemyShotVelocity, Active: true}
}

// Advance moves the shot one frame and deactivates it once outside the world
func (p *ProjectileComponent) Advance() {
	p.Y += p.Velocity
	if p.OutOfBounds() {
		p.Active = false
	}
}

// OutOfBounds reports whether Y left [0, ScreenHeight]
func (p ProjectileComponent) OutOfBounds() bool {
	return p.Y < 0 || p.Y > constants.ScreenHeight
}

// FromPlayer reports whether the shot travels up
func (p ProjectileComponent) FromPlayer() bool {
	return p.Velocity < 0
}
