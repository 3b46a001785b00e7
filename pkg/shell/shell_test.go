package shell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
	"github.com/qnkhuat/gameterm/pkg/chess"
	"github.com/qnkhuat/gameterm/pkg/gui"
	"go.uber.org/zap/zaptest"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	log := zaptest.NewLogger(t)
	c := New(DefaultCatalog(), DefaultLaunchers(chess.NewStandardBoard, gui.ThemeBasic, log), gui.ThemeBasic, log)
	c.TickInterval = 0
	return c
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func selected(t *testing.T, c *Controller) int {
	t.Helper()
	i, ok := c.Menu().Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	return i
}

func TestMenuNavigation(t *testing.T) {
	c := newController(t)
	if c.State() != AtMenu {
		t.Fatalf("initial state %s", c.State())
	}

	steps := []struct {
		ev   *tcell.EventKey
		want int
	}{
		{key(tcell.KeyUp), 0},
		{key(tcell.KeyDown), 1},
		{key(tcell.KeyDown), 1},
		{runeKey('k'), 0},
		{runeKey('j'), 1},
	}
	for i, s := range steps {
		c.HandleEvent(s.ev)
		if got := selected(t, c); got != s.want {
			t.Fatalf("step %d: selected %d, want %d", i, got, s.want)
		}
	}
	if c.State() != AtMenu {
		t.Fatalf("navigation changed state to %s", c.State())
	}
}

func TestActivateChessAndReturn(t *testing.T) {
	c := newController(t)

	c.HandleEvent(key(tcell.KeyEnter))
	if c.State() != InGame {
		t.Fatalf("state %s after activating chess", c.State())
	}
	first, ok := c.Active().(*gui.ChessApp)
	if !ok {
		t.Fatalf("active app is %T", c.Active())
	}

	// keys go to the game while it is active
	c.HandleEvent(key(tcell.KeyUp))
	if got := first.Cursor().String(); got != "E3" {
		t.Fatalf("cursor %s, want E3", got)
	}
	if i := selected(t, c); i != 0 {
		t.Fatalf("menu selection moved to %d while in game", i)
	}

	c.HandleEvent(runeKey('q'))
	if c.State() != AtMenu || c.Active() != nil {
		t.Fatalf("state %s active %v after quitting game", c.State(), c.Active())
	}

	c.HandleEvent(runeKey(' '))
	second, ok := c.Active().(*gui.ChessApp)
	if !ok {
		t.Fatalf("active app is %T", c.Active())
	}
	if second.Session.ID == first.Session.ID {
		t.Fatal("re-entering chess reused the previous session")
	}
	if n := len(second.Session.White.Moves()); n != 0 {
		t.Fatalf("fresh session has %d moves", n)
	}
}

func TestQuitAtMenu(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		c := newController(t)
		c.HandleEvent(ev)
		if c.State() != Exited {
			t.Errorf("%s: state %s, want Exited", ev.Name(), c.State())
		}
	}
}

func TestMinesweeperNotice(t *testing.T) {
	c := newController(t)
	c.HandleEvent(key(tcell.KeyDown))
	c.HandleEvent(key(tcell.KeyEnter))

	if c.State() != AtMenu {
		t.Fatalf("state %s, want AtMenu", c.State())
	}
	if c.Notice() != "Minesweeper is not available yet" {
		t.Fatalf("notice %q", c.Notice())
	}

	c.HandleEvent(key(tcell.KeyUp))
	if c.Notice() != "" {
		t.Fatalf("notice %q survived navigation", c.Notice())
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New(nil, nil, gui.ThemeBasic, nil)
	c.HandleEvent(key(tcell.KeyDown))
	c.HandleEvent(key(tcell.KeyEnter))
	if c.State() != AtMenu {
		t.Fatalf("state %s, want AtMenu", c.State())
	}
	c.HandleEvent(key(tcell.KeyEscape))
	if c.State() != Exited {
		t.Fatalf("state %s, want Exited", c.State())
	}
}

func TestNonKeyEventsAreInert(t *testing.T) {
	c := newController(t)
	c.HandleEvent(key(tcell.KeyDown))

	events := []tcell.Event{
		pkg.NewEventTick(),
		tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone),
		tcell.NewEventResize(80, 24),
		tcell.NewEventInterrupt("unrelated"),
	}
	for _, ev := range events {
		c.HandleEvent(ev)
		if c.State() != AtMenu || selected(t, c) != 1 {
			t.Fatalf("%T changed state to %s / %d", ev, c.State(), selected(t, c))
		}
	}
}

func TestQuitRequestFromGame(t *testing.T) {
	c := newController(t)
	c.HandleEvent(key(tcell.KeyEnter))
	c.HandleEvent(tcell.NewEventInterrupt(quitRequest{}))
	if c.State() != Exited || c.Active() != nil {
		t.Fatalf("state %s active %v after quit request", c.State(), c.Active())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{AtMenu: "AtMenu", InGame: "InGame", Exited: "Exited", State(9): "Unknown"} {
		if s.String() != want {
			t.Errorf("%d: %q, want %q", s, s.String(), want)
		}
	}
}

func TestCustomLauncher(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3"
	board, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	log := zaptest.NewLogger(t)
	launchers := DefaultLaunchers(func() *chess.Board { return board }, gui.ThemeClassic, log)
	if _, ok := launchers[HandleMinesweeper]; ok {
		t.Fatal("minesweeper should not have a launcher")
	}

	app := launchers[HandleChess]().(*gui.ChessApp)
	if got := app.Session.Board.FEN(); got != fen {
		t.Fatalf("board %s, want %s", got, fen)
	}
}

func TestDefaultLaunchersNilBoard(t *testing.T) {
	app := DefaultLaunchers(nil, gui.ThemeBasic, nil)[HandleChess]().(*gui.ChessApp)
	if got := app.Session.Board.Count(chess.White); got != 16 {
		t.Fatalf("%d white pieces, want 16", got)
	}
}
