package shell

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
	"go.uber.org/zap"
)

// ErrEventSourceClosed is returned when the screen stops delivering events
// before the player quit.
var ErrEventSourceClosed = errors.New("shell: event source closed")

// Run takes the terminal, runs the loop until the player quits and gives the
// terminal back. Teardown happens on every way out, panics included; a panic
// is re-raised once the terminal is restored.
func (c *Controller) Run(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("shell: init screen: %w", err)
	}
	screen.EnableMouse()
	defer func() {
		r := recover()
		screen.DisableMouse()
		screen.Fini()
		if r != nil {
			c.log.Error("shell panicked", zap.Any("panic", r))
			panic(r)
		}
	}()

	stop := pkg.StartTicker(screen, c.TickInterval)
	defer stop()

	if err := c.loop(screen); err != nil {
		c.log.Error("shell loop failed", zap.Error(err))
		return err
	}
	return nil
}

// loop renders, blocks for one event and dispatches it until Exited.
func (c *Controller) loop(screen tcell.Screen) error {
	for c.state != Exited {
		c.draw(screen)

		ev := screen.PollEvent()
		if ev == nil {
			return ErrEventSourceClosed
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		c.HandleEvent(ev)
	}
	return nil
}
