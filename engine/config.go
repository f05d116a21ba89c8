package engine

import "github.com/lixenwraith/ascii-invaders/constants"

// Config carries tunables into a Simulation
type Config struct {
	EnemyRows int
	EnemyCols int

	// FireCooldown is frames between accepted player shots
	FireCooldown int

	// EnemyFireChance is the probability of one enemy shot per frame, not per enemy
	// The check runs once per update, so the effective fire rate scales with the loop rate:
	// at 30 FPS enemies fire half as often per second as at 60 FPS
	EnemyFireChance float64

	// RemoveHitShot removes the enemy shot that hit the player
	// When false the shot stays in flight under the game over overlay
	RemoveHitShot bool

	// Seed for the enemy fire RNG; 0 picks a random seed
	Seed uint64
}

// DefaultConfig returns the built-in game tuning
func DefaultConfig() Config {
	return Config{
		EnemyRows:       constants.EnemyRows,
		EnemyCols:       constants.EnemyCols,
		FireCooldown:    constants.FireCooldownFrames,
		EnemyFireChance: constants.EnemyFireChance,
	}
}
