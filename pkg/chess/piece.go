package chess

import (
	notnil "github.com/notnil/chess"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// Piece is a plain value; two pieces with the same color and kind are equal.
type Piece struct {
	Color Color
	Kind  Kind
}

func NewPiece(c Color, k Kind) Piece {
	return Piece{Color: c, Kind: k}
}

var toNotnil = map[Piece]notnil.Piece{
	{White, King}:   notnil.WhiteKing,
	{White, Queen}:  notnil.WhiteQueen,
	{White, Rook}:   notnil.WhiteRook,
	{White, Bishop}: notnil.WhiteBishop,
	{White, Knight}: notnil.WhiteKnight,
	{White, Pawn}:   notnil.WhitePawn,
	{Black, King}:   notnil.BlackKing,
	{Black, Queen}:  notnil.BlackQueen,
	{Black, Rook}:   notnil.BlackRook,
	{Black, Bishop}: notnil.BlackBishop,
	{Black, Knight}: notnil.BlackKnight,
	{Black, Pawn}:   notnil.BlackPawn,
}

var fromNotnil = func() map[notnil.Piece]Piece {
	m := make(map[notnil.Piece]Piece, len(toNotnil))
	for p, np := range toNotnil {
		m[np] = p
	}
	return m
}()

// Glyph returns the unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	return toNotnil[p].String()
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}
