package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
	"github.com/lixenwraith/ascii-invaders/engine"
)

// Tracker turns terminal key events into per-frame held controls
// Terminals deliver presses and auto-repeats but never releases, so a control
// counts as held until its deadline passes without a new event for it.
// A fresh direction press holds for KeyInitialHoldWindow to bridge the
// auto-repeat delay; later repeats extend the hold by KeyHoldWindow.
type Tracker struct {
	table   *KeyTable
	clock   core.TimeProvider
	hold    time.Duration
	initial time.Duration

	leftUntil  time.Time
	rightUntil time.Time
	fireUntil  time.Time
}

// NewTracker creates a tracker using the default hold windows
func NewTracker(table *KeyTable, clock core.TimeProvider) *Tracker {
	return &Tracker{
		table:   table,
		clock:   clock,
		hold:    constants.KeyHoldWindow,
		initial: constants.KeyInitialHoldWindow,
	}
}

// HandleEvent records held controls and returns the resolved intent
// Non-key events resolve to IntentNone, except resize
func (t *Tracker) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := t.table.Resolve(ev)
		t.press(intent)
		return intent
	case *tcell.EventResize:
		return IntentResize
	default:
		return IntentNone
	}
}

// press extends a held control; one direction releases the other
func (t *Tracker) press(intent IntentType) {
	if !intent.Held() {
		return
	}
	now := t.clock.Now()
	switch intent {
	case IntentLeft:
		t.leftUntil = t.extend(t.leftUntil, now, true)
		t.rightUntil = time.Time{}
	case IntentRight:
		t.rightUntil = t.extend(t.rightUntil, now, true)
		t.leftUntil = time.Time{}
	case IntentFire:
		// Fire never gets the initial window: a tap would otherwise shoot twice
		t.fireUntil = t.extend(t.fireUntil, now, false)
	}
}

// extend returns the new deadline for a control pressed at now
// A press while the control is released starts a fresh hold
func (t *Tracker) extend(until, now time.Time, bridgeRepeat bool) time.Time {
	window := t.hold
	if bridgeRepeat && !now.Before(until) {
		window = t.initial
	}
	if next := now.Add(window); next.After(until) {
		return next
	}
	return until
}

// Sample returns the controls held at the current time
func (t *Tracker) Sample() engine.Input {
	now := t.clock.Now()
	return engine.Input{
		Left:  now.Before(t.leftUntil),
		Right: now.Before(t.rightUntil),
		Fire:  now.Before(t.fireUntil),
	}
}

// Release drops every held control
func (t *Tracker) Release() {
	t.leftUntil = time.Time{}
	t.rightUntil = time.Time{}
	t.fireUntil = time.Time{}
}
