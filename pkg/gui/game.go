package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
	"github.com/qnkhuat/gameterm/pkg/chess"
	"go.uber.org/zap"
)

const chessHelp = "arrows/hjkl move  Enter select/place  Esc cancel  q back to menu"

// ChessApp is the chess sub-application. It lets the players push pieces
// around the board and keeps each side's ledger; it does not check that a
// move is legal.
type ChessApp struct {
	Session *chess.Session
	Theme   Theme

	clock    *pkg.Clock
	cursor   chess.Position
	selected *chess.Position
	log      *zap.Logger
}

func NewChessApp(board *chess.Board, t Theme, logger *zap.Logger) *ChessApp {
	if logger == nil {
		logger = zap.NewNop()
	}
	session := chess.NewSession(board)
	return &ChessApp{
		Session: session,
		Theme:   t,
		clock:   pkg.NewClock(session.Started),
		cursor:  chess.FromIndex(uint8(chess.FileE), uint8(chess.Rank2)),
		log:     logger.With(zap.String("session", session.ID)),
	}
}

func (a *ChessApp) Cursor() chess.Position { return a.cursor }

// Selection returns the cell picked as the origin of the next move.
func (a *ChessApp) Selection() (chess.Position, bool) {
	if a.selected == nil {
		return chess.Position{}, false
	}
	return *a.selected, true
}

// HandleKey applies one key press and reports whether the player left the game.
func (a *ChessApp) HandleKey(ev *tcell.EventKey) bool {
	switch pkg.ActionFor(ev) {
	case pkg.ActionUp:
		a.moveCursor(0, 1)
	case pkg.ActionDown:
		a.moveCursor(0, -1)
	case pkg.ActionLeft:
		a.moveCursor(-1, 0)
	case pkg.ActionRight:
		a.moveCursor(1, 0)
	case pkg.ActionSelect:
		a.selectCell()
	case pkg.ActionQuit:
		if a.selected != nil && ev.Key() == tcell.KeyEscape {
			a.selected = nil
			return false
		}
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *ChessApp) moveCursor(df, dr int) {
	f := clamp(int(a.cursor.File())+df, 0, 7)
	r := clamp(int(a.cursor.Rank())+dr, 0, 7)
	a.cursor = chess.FromIndex(uint8(f), uint8(r))
}

func (a *ChessApp) selectCell() {
	board := a.Session.Board
	target, occupied := board.Get(a.cursor)

	if a.selected == nil {
		if occupied {
			sq := a.cursor
			a.selected = &sq
		}
		return
	}

	from := *a.selected
	if from == a.cursor { // chose the last selection to deactivate
		a.selected = nil
		return
	}

	moving, _ := board.Get(from)
	if occupied && target.Color == moving.Color {
		sq := a.cursor
		a.selected = &sq
		return
	}

	a.Session.Apply(from, a.cursor)
	a.log.Debug("move",
		zap.Stringer("piece", moving),
		zap.Stringer("from", from),
		zap.Stringer("to", a.cursor),
		zap.Bool("capture", occupied),
	)
	a.selected = nil
}

// Draw renders the session. The screen is only borrowed for the call.
func (a *ChessApp) Draw(s tcell.Screen) {
	t := a.Theme
	sw, sh := s.Size()
	frame(s, "Chess", 0, 0, sw, sh, t)

	x := leftMargin
	y := topMargin
	rows := drawBoard(s, x, y, a.Session.Board, a.cursor, a.selected, t)

	status := fmt.Sprintf("⏱ %s  cursor %s", a.clock, a.cursor)
	if sel, ok := a.Selection(); ok {
		p, _ := a.Session.Board.Get(sel)
		status += fmt.Sprintf("  selected %s %s", p.Glyph(), sel)
	}
	drawText(s, x, y+rows+1, DefStyle.Foreground(t.Subtitle), status)
	drawText(s, x, y+rows+2, DefStyle.Foreground(t.Unselected), chessHelp)

	lx := x + 2 + 8*squareWidth + 4
	lh := (rows + 1) / 2
	if lh < 3 {
		lh = 3
	}
	drawLedger(s, lx, y-1, ledgerWidth, lh, a.Session.Black, t)
	drawLedger(s, lx, y-1+lh, ledgerWidth, lh+1, a.Session.White, t)
}
