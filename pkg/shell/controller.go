// Package shell runs the game center: it owns the terminal, the menu and the
// game that is currently being played.
//
// The controller is a small state machine:
//
//	AtMenu --activate(handle)--> InGame --game quits--> AtMenu
//	AtMenu --quit--> Exited
//
// While a game is active every key press goes to it; the shell only watches
// for the game reporting that it is done.
package shell

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
	"github.com/qnkhuat/gameterm/pkg/gui"
	"github.com/qnkhuat/gameterm/pkg/menu"
	"go.uber.org/zap"
)

// App is a sub-application launched from the menu.
type App interface {
	// HandleKey reports true when the player has left the app.
	HandleKey(ev *tcell.EventKey) bool
	// Draw renders onto a screen the app does not own.
	Draw(s tcell.Screen)
}

// Launcher starts a fresh instance of an app.
type Launcher func() App

type State int

const (
	AtMenu State = iota
	InGame
	Exited
)

func (s State) String() string {
	switch s {
	case AtMenu:
		return "AtMenu"
	case InGame:
		return "InGame"
	case Exited:
		return "Exited"
	default:
		return "Unknown"
	}
}

type quitRequest struct{}

// RequestQuit asks a running shell to exit from outside the loop, e.g. on a
// signal. The request is seen on the next loop iteration.
func RequestQuit(s tcell.Screen) error {
	return s.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
}

type Controller struct {
	TickInterval time.Duration

	menu      *menu.State
	launchers map[menu.Handle]Launcher
	active    App
	state     State
	notice    string
	theme     gui.Theme
	log       *zap.Logger
}

func New(entries []menu.Entry, launchers map[menu.Handle]Launcher, theme gui.Theme, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		TickInterval: pkg.DefaultTickInterval,
		menu:         menu.New(entries),
		launchers:    launchers,
		state:        AtMenu,
		theme:        theme,
		log:          logger,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Menu() *menu.State { return c.menu }

// Active returns the running app, nil at the menu.
func (c *Controller) Active() App { return c.active }

// Notice is the message shown under the menu, if any.
func (c *Controller) Notice() string { return c.notice }

// HandleEvent dispatches one input event. Only key presses and quit requests
// change state; ticks, mouse and resize events are ignored here.
func (c *Controller) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(quitRequest); ok {
			c.log.Info("quit requested")
			c.closeGame()
			c.state = Exited
		}
	}
}

func (c *Controller) handleKey(ev *tcell.EventKey) {
	switch c.state {
	case InGame:
		if c.active.HandleKey(ev) {
			c.closeGame()
		}
	case AtMenu:
		c.handleMenuKey(ev)
	}
}

func (c *Controller) handleMenuKey(ev *tcell.EventKey) {
	switch pkg.ActionFor(ev) {
	case pkg.ActionUp:
		c.notice = ""
		c.menu.MoveUp()
	case pkg.ActionDown:
		c.notice = ""
		c.menu.MoveDown()
	case pkg.ActionSelect:
		if h, ok := c.menu.Activate(); ok {
			c.launch(h)
		}
	case pkg.ActionQuit:
		c.log.Info("leaving game center")
		c.state = Exited
	}
}

func (c *Controller) launch(h menu.Handle) {
	launcher, ok := c.launchers[h]
	if !ok {
		i, _ := c.menu.Selected()
		c.notice = c.menu.Entries()[i].Label + " is not available yet"
		c.log.Info("no launcher for entry", zap.String("handle", string(h)))
		return
	}

	c.notice = ""
	c.active = launcher()
	c.state = InGame
	c.log.Info("launched game", zap.String("handle", string(h)))
}

// closeGame drops the active app; nothing from it survives the return to
// the menu.
func (c *Controller) closeGame() {
	if c.active == nil {
		return
	}
	c.active = nil
	c.state = AtMenu
	c.log.Info("returned to menu")
}

func (c *Controller) draw(s tcell.Screen) {
	s.Clear()
	if c.active != nil {
		c.active.Draw(s)
	} else {
		gui.DrawMenu(s, c.menu, c.notice, c.theme)
	}
	s.Show()
}
