package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively for letters
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'r': IntentRestart,
			'm': IntentToggleMute,
			'a': IntentLeft,
			'd': IntentRight,
			' ': IntentFire,
		},
	}
}

// Resolve maps a key event to its intent
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
