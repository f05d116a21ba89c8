package constants

// Formation
const (
	// EnemyBaseSpeed is the formation speed with every enemy alive
	EnemyBaseSpeed = 1.0

	// EnemySpeedStep is added to the speed per dead enemy
	EnemySpeedStep = 0.15

	// EnemyDropStep is the vertical drop on each edge bounce
	EnemyDropStep = 20
)

// Firing
const (
	// FireCooldownFrames gates consecutive player shots
	FireCooldownFrames = 20

	// EnemyFireChance is per-frame probability of one enemy shot (tuned for 60 FPS)
	EnemyFireChance = 0.02
)

// Step sound cadence in frames
const (
	StepSoundInterval    = 30
	StepSoundMinInterval = 10
)

// Scoring
const (
	KillScore = 10
)
