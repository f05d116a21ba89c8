package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r, only honored after GameOver/Win
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Held controls, sampled once per frame
	IntentLeft  // Left arrow, a
	IntentRight // Right arrow, d
	IntentFire  // Space
)

// String returns the intent name for logging
func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentRestart:
		return "restart"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Held reports whether the intent is a held control rather than a one-shot action
func (i IntentType) Held() bool {
	return i == IntentLeft || i == IntentRight || i == IntentFire
}
