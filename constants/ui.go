package constants

import "time"

// HUD
const (
	// HUDX, HUDY place the score text in world units
	HUDX = 10
	HUDY = 10
)

// Overlay text
const (
	GameOverText = "GAME OVER - Press R to Restart"
	WinText      = "YOU WIN! - Press R to Restart"
	MutedText    = "[muted]"
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after an auto-repeat event
	// Terminals report presses and auto-repeats only, never releases
	KeyHoldWindow = 180 * time.Millisecond

	// KeyInitialHoldWindow covers the gap between a direction press and the first
	// auto-repeat (commonly 250-660ms), so holding a key moves without a stall
	KeyInitialHoldWindow = 700 * time.Millisecond
)
