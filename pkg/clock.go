package pkg

import (
	"fmt"
	"time"
)

// Clock reports how long a session has been running. It is read at render
// time and never ticks on its own.
type Clock struct {
	Start time.Time
	now   func() time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{Start: start, now: time.Now}
}

func (cl *Clock) Elapsed() time.Duration {
	d := cl.now().Sub(cl.Start)
	if d < 0 {
		return 0
	}
	return d
}

func (cl *Clock) String() string {
	e := cl.Elapsed()
	return fmt.Sprintf("%d:%02d", int(e.Minutes()), int(e.Seconds())%60)
}
