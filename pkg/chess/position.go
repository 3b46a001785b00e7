package chess

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"
)

const (
	numFiles = 8
	numRanks = 8
	// NumSquares is the number of cells on the board.
	NumSquares = numFiles * numRanks
)

// File is a board column, 0 for A through 7 for H.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string(rune('A' + f))
}

// Rank is a board row, 0 for rank 1 through 7 for rank 8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string(rune('1' + r))
}

// Position addresses one cell. Only FromIndex and ParsePosition construct it,
// so every Position in circulation is on the board.
type Position struct {
	file File
	rank Rank
}

// FromIndex builds a Position from zero based file and rank indexes.
// Callers must validate their input; anything outside 0-7 panics.
func FromIndex(file, rank uint8) Position {
	if file >= numFiles {
		panic(fmt.Sprintf("chess: file index %d outside the 0-7 range", file))
	}
	if rank >= numRanks {
		panic(fmt.Sprintf("chess: rank index %d outside the 0-7 range", rank))
	}
	return Position{file: File(file), rank: Rank(rank)}
}

// ParsePosition reads algebraic coordinates such as "e4" or "E4".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("chess: invalid position %q", s)
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Position{}, fmt.Errorf("chess: invalid position %q", s)
	}
	return FromIndex(f-'a', r-'1'), nil
}

func (p Position) File() File { return p.file }
func (p Position) Rank() Rank { return p.rank }

func (p Position) String() string {
	return p.file.String() + p.rank.String()
}

// Square converts to the notnil/chess square numbering, A1 is 0.
func (p Position) Square() notnil.Square {
	return notnil.Square(p.index())
}

func (p Position) index() int {
	return int(p.rank)*numFiles + int(p.file)
}

func positionFromSquare(sq notnil.Square) Position {
	return FromIndex(uint8(sq.File()), uint8(sq.Rank()))
}
