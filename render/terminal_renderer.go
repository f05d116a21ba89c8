package render

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-invaders/components"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// TerminalRenderer draws world snapshots onto a tcell screen
// World coordinates are scaled to the current terminal size; glyph art lines
// occupy consecutive rows starting at the entity's anchor cell
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// UpdateDimensions adopts a new terminal size
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// ToCell maps a world position to a terminal cell
func (r *TerminalRenderer) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(r.width) / constants.ScreenWidth))
	row = int(math.Floor(y * float64(r.height) / constants.ScreenHeight))
	return col, row
}

// RenderFrame draws the whole frame; the snapshot is never mutated
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, muted bool) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawArt(snap.Player.X, snap.Player.Y, constants.PlayerArt, defaultStyle.Foreground(RgbPlayer))

	enemyStyle := defaultStyle.Foreground(RgbEnemy)
	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		r.drawArt(e.X, e.Y, constants.EnemyArt[e.Frame()], enemyStyle)
	}

	r.drawShots(snap.PlayerShots, defaultStyle)
	r.drawShots(snap.EnemyShots, defaultStyle)

	r.drawHUD(snap.Score, muted, defaultStyle)

	switch snap.Phase {
	case engine.PhaseGameOver:
		r.drawOverlay(constants.GameOverText, defaultStyle.Foreground(RgbGameOver).Bold(true))
	case engine.PhaseWin:
		r.drawOverlay(constants.WinText, defaultStyle.Foreground(RgbWin).Bold(true))
	}
}

// drawArt draws multi-line glyph art; spaces are transparent
func (r *TerminalRenderer) drawArt(x, y float64, art []string, style tcell.Style) {
	col, row := r.ToCell(x, y)
	for i, line := range art {
		r.drawText(col, row+i, line, style, true)
	}
}

// drawShots picks glyph and color from the shot's travel direction
func (r *TerminalRenderer) drawShots(shots []components.ProjectileComponent, defaultStyle tcell.Style) {
	for _, p := range shots {
		if !p.Active {
			continue
		}
		glyph, fg := constants.EnemyShotRune, RgbEnemyShot
		if p.FromPlayer() {
			glyph, fg = constants.PlayerShotRune, RgbPlayerShot
		}
		col, row := r.ToCell(p.X, p.Y)
		r.setCell(col, row, glyph, defaultStyle.Foreground(fg))
	}
}

func (r *TerminalRenderer) drawHUD(score int, muted bool, defaultStyle tcell.Style) {
	col, row := r.ToCell(constants.HUDX, constants.HUDY)
	text := "Score: " + strconv.Itoa(score)
	r.drawText(col, row, text, defaultStyle.Foreground(RgbScore).Bold(true), false)

	if muted {
		r.drawText(col+len(text)+1, row, constants.MutedText, defaultStyle.Foreground(RgbMuted), false)
	}
}

// drawOverlay centers text on the screen
func (r *TerminalRenderer) drawOverlay(text string, style tcell.Style) {
	col := (r.width - len(text)) / 2
	if col < 0 {
		col = 0
	}
	r.drawText(col, r.height/2, text, style, false)
}

func (r *TerminalRenderer) drawText(col, row int, text string, style tcell.Style, transparent bool) {
	for i, ch := range []rune(text) {
		if transparent && ch == ' ' {
			continue
		}
		r.setCell(col+i, row, ch, style)
	}
}

// setCell clips to the visible area
func (r *TerminalRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}
