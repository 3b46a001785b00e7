package pkg

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventTick asks the shell loop to redraw. It carries no state change.
type EventTick struct {
	tcell.EventTime
}

func NewEventTick() *EventTick {
	ev := &EventTick{}
	ev.SetEventNow()
	return ev
}

// StartTicker posts an EventTick to screen every interval until the returned
// stop func is called. A zero interval disables ticking.
func StartTicker(screen tcell.Screen, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	tick := time.NewTicker(interval)
	go func() {
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				// A full queue already guarantees a redraw, drop the tick.
				_ = screen.PostEvent(NewEventTick())
			}
		}
	}()

	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
	}
}
