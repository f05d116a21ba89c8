package engine

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
)

// Phase is the session state machine: Playing -> GameOver | Win
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseWin
)

// String returns the phase name for logging
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Session is all mutable state of one game from spawn to GameOver/Win
type Session struct {
	ID uuid.UUID

	Player      components.PlayerComponent
	PlayerShots *Arena[components.ProjectileComponent]
	EnemyShots  *Arena[components.ProjectileComponent]
	Enemies     *Arena[components.EnemyComponent]

	// InitialEnemies is the formation size at spawn
	InitialEnemies int

	Phase Phase
	Score int

	// Formation movement, shared by every enemy
	Direction float64
	Speed     float64

	FireCooldown int
	StepTimer    int
	Frame        int64
}

// NewSession builds a fresh session with a full formation
func NewSession(cfg Config) *Session {
	s := &Session{
		ID:          uuid.New(),
		Player:      components.NewPlayer(),
		PlayerShots: NewArena[components.ProjectileComponent](16),
		EnemyShots:  NewArena[components.ProjectileComponent](16),
		Enemies:     NewArena[components.EnemyComponent](cfg.EnemyRows * cfg.EnemyCols),
		Phase:       PhasePlaying,
		Direction:   1,
		Speed:       constants.EnemyBaseSpeed,
	}

	for row := 0; row < cfg.EnemyRows; row++ {
		for col := 0; col < cfg.EnemyCols; col++ {
			x := float64(constants.EnemyOffsetX + col*constants.EnemySpacingX)
			y := float64(constants.EnemyOffsetY + row*constants.EnemySpacingY)
			s.Enemies.Add(components.NewEnemy(x, y))
		}
	}
	s.InitialEnemies = s.Enemies.Len()

	return s
}

// Playing reports whether the simulation still advances
func (s *Session) Playing() bool {
	return s.Phase == PhasePlaying
}

// AliveEnemies counts living enemies
func (s *Session) AliveEnemies() int {
	alive := 0
	s.Enemies.Each(func(_ int, e *components.EnemyComponent) {
		if e.Alive {
			alive++
		}
	})
	return alive
}

// Killed returns how many enemies died this session
func (s *Session) Killed() int {
	return s.InitialEnemies - s.AliveEnemies()
}

// end moves the session to a terminal phase; the first terminal phase reached sticks
func (s *Session) end(p Phase) bool {
	if s.Phase != PhasePlaying || p == PhasePlaying {
		return false
	}
	s.Phase = p
	return true
}
