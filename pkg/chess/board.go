package chess

import (
	"fmt"

	notnil "github.com/notnil/chess"
)

type cell struct {
	piece    Piece
	occupied bool
}

// Square is one entry of a board traversal.
type Square struct {
	Position Position
	Piece    Piece
	Occupied bool
}

// Board is an 8x8 grid of optional pieces. It stores cells and nothing else;
// whether a placement is legal chess is the caller's business.
type Board struct {
	cells [NumSquares]cell
}

func NewBoard() *Board {
	return &Board{}
}

var backRank = [numFiles]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns a board in the usual starting arrangement.
func NewStandardBoard() *Board {
	b := NewBoard()
	for f := uint8(0); f < numFiles; f++ {
		b.Place(FromIndex(f, 0), NewPiece(White, backRank[f]))
		b.Place(FromIndex(f, 1), NewPiece(White, Pawn))
		b.Place(FromIndex(f, 6), NewPiece(Black, Pawn))
		b.Place(FromIndex(f, 7), NewPiece(Black, backRank[f]))
	}
	return b
}

// NewBoardFromFEN builds a board from a FEN record or its piece placement field.
func NewBoardFromFEN(fen string) (*Board, error) {
	opt, err := notnil.FEN(expandFEN(fen))
	if err != nil {
		return nil, fmt.Errorf("chess: parse fen: %w", err)
	}
	b := NewBoard()
	for sq, p := range notnil.NewGame(opt).Position().Board().SquareMap() {
		piece, ok := fromNotnil[p]
		if !ok {
			continue
		}
		b.Place(positionFromSquare(sq), piece)
	}
	return b, nil
}

// expandFEN appends default fields when only the placement is given.
func expandFEN(fen string) string {
	for _, r := range fen {
		if r == ' ' {
			return fen
		}
	}
	return fen + " w - - 0 1"
}

func (b *Board) Place(pos Position, p Piece) {
	b.cells[pos.index()] = cell{piece: p, occupied: true}
}

func (b *Board) Clear(pos Position) {
	b.cells[pos.index()] = cell{}
}

func (b *Board) Get(pos Position) (Piece, bool) {
	c := b.cells[pos.index()]
	return c.piece, c.occupied
}

// Cells walks the board from rank 8 down to rank 1, file A to H within a rank.
// Renderers depend on this order.
func (b *Board) Cells() []Square {
	out := make([]Square, 0, NumSquares)
	for r := numRanks - 1; r >= 0; r-- {
		for f := 0; f < numFiles; f++ {
			pos := FromIndex(uint8(f), uint8(r))
			c := b.cells[pos.index()]
			out = append(out, Square{Position: pos, Piece: c.piece, Occupied: c.occupied})
		}
	}
	return out
}

// Count returns how many pieces of the given color are on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for _, cl := range b.cells {
		if cl.occupied && cl.piece.Color == c {
			n++
		}
	}
	return n
}

// FEN returns the piece placement field of a FEN record.
func (b *Board) FEN() string {
	m := make(map[notnil.Square]notnil.Piece)
	for i, c := range b.cells {
		if c.occupied {
			m[notnil.Square(i)] = toNotnil[c.piece]
		}
	}
	return notnil.NewBoard(m).String()
}
