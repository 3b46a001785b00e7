package chess

import (
	"time"

	"github.com/google/uuid"
)

// Session is one game in progress: a board and a ledger per side. A session
// is created when the game is launched and dropped when the player leaves.
type Session struct {
	ID      string
	Started time.Time
	Board   *Board
	White   *Ledger
	Black   *Ledger
}

func NewSession(board *Board) *Session {
	if board == nil {
		board = NewStandardBoard()
	}
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Board:   board,
		White:   NewLedger(White),
		Black:   NewLedger(Black),
	}
}

// Ledger returns the ledger for a side.
func (s *Session) Ledger(c Color) *Ledger {
	if c == Black {
		return s.Black
	}
	return s.White
}

// Apply moves the piece at from to to, recording the move and any capture in
// the mover's ledger. It returns false and leaves the session untouched when
// from is empty, when from and to are the same cell, or when to holds a piece
// of the mover's own color.
func (s *Session) Apply(from, to Position) bool {
	p, ok := s.Board.Get(from)
	if !ok || from == to {
		return false
	}
	taken, captured := s.Board.Get(to)
	if captured && taken.Color == p.Color {
		return false
	}
	l := s.Ledger(p.Color)
	if captured {
		l.RecordCapture(taken)
	}
	s.Board.Clear(from)
	s.Board.Place(to, p)
	l.RecordMove(p, from, to)
	return true
}
