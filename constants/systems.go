package constants

// System Execution Priorities (lower runs first)
const (
	PriorityInput      = 10
	PriorityAnimation  = 20
	PriorityStepSound  = 30
	PriorityFormation  = 40
	PrioritySpeed      = 50
	PriorityProjectile = 60
	PriorityEnemyFire  = 70
	PriorityCollision  = 80
	PriorityWin        = 90
	PriorityCooldown   = 900 // Last: only reached while still playing
)
