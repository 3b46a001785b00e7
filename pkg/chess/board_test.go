package chess

import "testing"

const standardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard()
	for _, sq := range b.Cells() {
		if sq.Occupied {
			t.Fatalf("empty board has a piece on %s", sq.Position)
		}
	}
}

func TestNewStandardBoard(t *testing.T) {
	b := NewStandardBoard()

	if n := b.Count(White); n != 16 {
		t.Errorf("white has %d pieces, want 16", n)
	}
	if n := b.Count(Black); n != 16 {
		t.Errorf("black has %d pieces, want 16", n)
	}

	empty := 0
	for _, sq := range b.Cells() {
		if !sq.Occupied {
			empty++
		}
	}
	if empty != 32 {
		t.Errorf("%d empty cells, want 32", empty)
	}

	for _, c := range []struct {
		pos  string
		want Piece
	}{
		{"d1", NewPiece(White, Queen)},
		{"e1", NewPiece(White, King)},
		{"d8", NewPiece(Black, Queen)},
		{"e8", NewPiece(Black, King)},
		{"a1", NewPiece(White, Rook)},
		{"g8", NewPiece(Black, Knight)},
		{"c2", NewPiece(White, Pawn)},
		{"f7", NewPiece(Black, Pawn)},
	} {
		pos, err := ParsePosition(c.pos)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := b.Get(pos)
		if !ok || got != c.want {
			t.Errorf("%s holds %v (occupied %v), want %v", c.pos, got, ok, c.want)
		}
	}

	if fen := b.FEN(); fen != standardPlacement {
		t.Errorf("FEN() = %q", fen)
	}
}

func TestCellsOrder(t *testing.T) {
	cells := NewBoard().Cells()
	if len(cells) != NumSquares {
		t.Fatalf("got %d cells", len(cells))
	}
	if cells[0].Position.String() != "A8" {
		t.Errorf("first cell is %s, want A8", cells[0].Position)
	}
	if cells[7].Position.String() != "H8" {
		t.Errorf("eighth cell is %s, want H8", cells[7].Position)
	}
	if cells[8].Position.String() != "A7" {
		t.Errorf("ninth cell is %s, want A7", cells[8].Position)
	}
	if cells[63].Position.String() != "H1" {
		t.Errorf("last cell is %s, want H1", cells[63].Position)
	}
}

func TestPlaceClearGet(t *testing.T) {
	b := NewBoard()
	pos := FromIndex(3, 4)
	queen := NewPiece(Black, Queen)

	if _, ok := b.Get(pos); ok {
		t.Fatal("cell occupied before place")
	}
	b.Place(pos, queen)
	if got, ok := b.Get(pos); !ok || got != queen {
		t.Fatalf("Get after Place = %v, %v", got, ok)
	}

	// Overwrite is allowed.
	b.Place(pos, NewPiece(White, Pawn))
	if got, _ := b.Get(pos); got.Color != White {
		t.Fatalf("overwrite kept %v", got)
	}

	b.Clear(pos)
	if _, ok := b.Get(pos); ok {
		t.Fatal("cell occupied after Clear")
	}
}

func TestNewBoardFromFEN(t *testing.T) {
	b, err := NewBoardFromFEN(standardPlacement)
	if err != nil {
		t.Fatal(err)
	}
	if b.FEN() != standardPlacement {
		t.Errorf("round trip produced %q", b.FEN())
	}

	b, err = NewBoardFromFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b.Count(White) != 1 || b.Count(Black) != 1 {
		t.Errorf("unexpected piece count %d/%d", b.Count(White), b.Count(Black))
	}
	if p, ok := b.Get(FromIndex(4, 4)); !ok || p != NewPiece(Black, King) {
		t.Errorf("e5 holds %v", p)
	}

	if _, err := NewBoardFromFEN("not a fen"); err == nil {
		t.Error("expected error for garbage fen")
	}
}

func TestGlyph(t *testing.T) {
	if g := NewPiece(White, King).Glyph(); g != "♔" {
		t.Errorf("white king glyph %q", g)
	}
	if g := NewPiece(Black, Pawn).Glyph(); g != "♟" {
		t.Errorf("black pawn glyph %q", g)
	}
}
