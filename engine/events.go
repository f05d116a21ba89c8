// Package engine owns the game session and runs the per-frame system pipeline.
//
// Systems never call audio or logging directly. They push events to the
// simulation's EventQueue, and the game loop consumes them after each update:
//
//	// Producer (EnemyFireSystem)
//	sim.PlaySound(core.SoundEnemyShoot)
//
//	// Consumer (game loop)
//	for _, ev := range sim.ConsumeEvents() {
//	    if ev.Type == engine.EventSound {
//	        player.Play(ev.Sound)
//	    }
//	}
package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/ascii-invaders/constants"
	"github.com/lixenwraith/ascii-invaders/core"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSound requests playback of a bank effect; Sound is set
	EventSound EventType = iota

	// EventPhaseChanged reports a transition out of Playing; Phase is the new phase
	EventPhaseChanged

	// EventSessionStarted reports a fresh session after reset
	EventSessionStarted
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventSound:
		return "Sound"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventSessionStarted:
		return "SessionStarted"
	default:
		return "Unknown"
	}
}

// GameEvent is an immutable record pushed by a system
type GameEvent struct {
	Type  EventType
	Sound core.SoundType
	Phase Phase
	Frame int64 // Session frame the event was pushed in
}

// EventQueue is a ring buffer of game events
// Push is safe for concurrent producers; Consume is single-consumer (game loop)
// When full, the oldest events are overwritten
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   atomic.Uint64 // Next read index
	tail   atomic.Uint64 // Next write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, claiming a slot via CAS
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail%constants.EventQueueSize] = event

			// Overwrote an unread slot: drop the oldest
			currentHead := eq.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns pending events in FIFO order and marks them consumed, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentHead >= currentTail {
			return nil
		}

		start := currentHead
		if currentTail-start > constants.EventQueueSize {
			start = currentTail - constants.EventQueueSize
		}

		result := make([]GameEvent, currentTail-start)
		for i := range result {
			result[i] = eq.events[(start+uint64(i))%constants.EventQueueSize]
		}

		if eq.head.CompareAndSwap(currentHead, currentTail) {
			return result
		}
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	n := tail - head
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}
