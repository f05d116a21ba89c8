package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbPlayer     = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbEnemy      = tcell.NewRGBColor(255, 255, 255) // White
	RgbPlayerShot = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbEnemyShot  = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbScore      = tcell.NewRGBColor(0, 255, 0)     // Green, like the turret
	RgbMuted      = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbWin        = tcell.NewRGBColor(0, 255, 0)     // Green
)
