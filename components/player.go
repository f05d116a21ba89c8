package components

import (
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// PlayerComponent is the turret; Y never changes during a session
type PlayerComponent struct {
	X, Y float64
}

// NewPlayer places the turret at its start position
func NewPlayer() PlayerComponent {
	return PlayerComponent{X: constants.PlayerStartX, Y: constants.PlayerY}
}

// MoveLeft shifts by PlayerSpeed, clamped to the left edge
func (p *PlayerComponent) MoveLeft() {
	p.X = core.Clamp(p.X-constants.PlayerSpeed, 0, constants.ScreenWidth-constants.PlayerWidth)
}

// MoveRight shifts by PlayerSpeed, clamped to the right edge
func (p *PlayerComponent) MoveRight() {
	p.X = core.Clamp(p.X+constants.PlayerSpeed, 0, constants.ScreenWidth-constants.PlayerWidth)
}

// Rect returns the collision rectangle
func (p PlayerComponent) Rect() core.Rect {
	return core.Rect{X: p.X, Y: p.Y, Width: constants.PlayerWidth, Height: constants.PlayerHeight}
}

// Muzzle returns the spawn point of a player shot
func (p PlayerComponent) Muzzle() (x, y float64) {
	return p.X + constants.ShotOffsetX, p.Y
}
