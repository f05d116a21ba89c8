package constants

// Player
const (
	PlayerWidth  = 50
	PlayerHeight = 40
	PlayerSpeed  = 5

	// PlayerStartX is horizontal center of the world
	PlayerStartX = ScreenWidth / 2

	// PlayerY is fixed for the whole session
	PlayerY = ScreenHeight - 60
)

// Projectiles
const (
	// PlayerShotVelocity is negative: player shots travel up
	PlayerShotVelocity = -8

	// EnemyShotVelocity is positive: enemy shots travel down
	EnemyShotVelocity = 6

	// ShotOffsetX centers a shot under/over the shooter's art
	ShotOffsetX = 20

	// EnemyShotOffsetY spawns enemy shots just below the enemy
	EnemyShotOffsetY = 40
)

// Enemies
const (
	EnemyWidth  = 50
	EnemyHeight = 40

	EnemyRows     = 3
	EnemyCols     = 7
	EnemySpacingX = 100
	EnemySpacingY = 80
	EnemyOffsetX  = 50
	EnemyOffsetY  = 30

	// EnemyAnimationPeriod is frames per full 2-frame art cycle
	EnemyAnimationPeriod = 30
)
