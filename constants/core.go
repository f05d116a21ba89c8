package constants

import "time"

// Game Loop Timing
const (
	// TargetFPS is the fixed simulation and render rate
	TargetFPS = 60

	// FrameUpdateInterval is the frame budget at TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// EventQueueSize is the game event ring capacity
	EventQueueSize = 256

	// TerminalEventBuffer is the capacity of the terminal event channel
	TerminalEventBuffer = 64
)

// World dimensions in world units; the renderer scales them to terminal cells
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)
