package chess

import "fmt"

// Move is one executed move.
type Move struct {
	Piece Piece
	From  Position
	To    Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s-%s", m.Piece.Glyph(), m.From, m.To)
}

// Ledger is a player's history: the moves they made and the pieces they took.
// Both lists only grow.
type Ledger struct {
	Color    Color
	moves    []Move
	captures []Piece
}

func NewLedger(c Color) *Ledger {
	return &Ledger{Color: c}
}

func (l *Ledger) RecordMove(p Piece, from, to Position) {
	l.moves = append(l.moves, Move{Piece: p, From: from, To: to})
}

func (l *Ledger) RecordCapture(p Piece) {
	l.captures = append(l.captures, p)
}

// Moves returns a copy of the move history in the order recorded.
func (l *Ledger) Moves() []Move {
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}

// Captures returns a copy of the captured pieces in the order recorded.
func (l *Ledger) Captures() []Piece {
	out := make([]Piece, len(l.captures))
	copy(out, l.captures)
	return out
}
