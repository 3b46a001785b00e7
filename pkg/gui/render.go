package gui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg/chess"
	"github.com/qnkhuat/gameterm/pkg/menu"
	"github.com/rivo/tview"
)

const (
	leftMargin  = 4
	topMargin   = 3
	squareWidth = 3
	ledgerWidth = 26

	menuTitle    = "Game Center"
	menuSubtitle = "Please pick a game from the list below!"
	menuHelp     = "↑/↓ navigate  Enter select  q quit"
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// frame draws a bordered box with a centered title.
func frame(s tcell.Screen, title string, x, y, w, h int, t Theme) {
	box := tview.NewBox().
		SetBorder(true).
		SetBorderColor(t.Border).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBackgroundColor(tcell.ColorDefault)
	box.SetRect(x, y, w, h)
	box.Draw(s)
}

// DrawMenu renders the game menu centered on the screen.
func DrawMenu(s tcell.Screen, m *menu.State, notice string, t Theme) {
	sw, sh := s.Size()
	entries := m.Entries()

	w := len(menuSubtitle) + 6
	h := len(entries) + 9
	if len(entries) == 0 {
		h++
	}
	x := (sw - w) / 2
	y := (sh - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	frame(s, "Games Menu", x, y, w, h, t)

	inner := w - 2
	row := y + 2
	tview.Print(s, "[::b]"+menuTitle, x+1, row, inner, tview.AlignCenter, t.Title)
	row++
	tview.Print(s, menuSubtitle, x+1, row, inner, tview.AlignCenter, t.Subtitle)
	row += 2

	if len(entries) == 0 {
		tview.Print(s, "No games available", x+1, row, inner, tview.AlignCenter, t.Notice)
		row++
	}
	sel, _ := m.Selected()
	for i, e := range entries {
		label := "  " + tview.Escape(e.Label) + "  "
		color := t.Unselected
		if i == sel {
			label = "› " + tview.Escape(e.Label) + "  "
			color = t.Selected
		}
		tview.Print(s, label, x+1, row, inner, tview.AlignCenter, color)
		row++
	}

	row++
	if notice != "" {
		tview.Print(s, tview.Escape(notice), x+1, row, inner, tview.AlignCenter, t.Notice)
	}
	row++
	tview.Print(s, menuHelp, x+1, row, inner, tview.AlignCenter, t.Subtitle)
}

// squareBg returns the theme's color corresponding to the square
func squareBg(pos chess.Position, t Theme) tcell.Color {
	// A1 is a dark square
	if (int(pos.File())+int(pos.Rank()))%2 == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p chess.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)

	if p.Color == chess.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// drawSquare draws a board square and its corresponding piece
func drawSquare(s tcell.Screen, col, row int, sq chess.Square, sqBg tcell.Color, t Theme) {
	bg := tcell.StyleDefault.Background(sqBg)
	for i := 0; i < squareWidth; i++ {
		s.SetContent(col+i, row, ' ', nil, bg)
	}
	if sq.Occupied {
		glyph := []rune(sq.Piece.Glyph())
		s.SetContent(col+squareWidth/2, row, glyph[0], nil, stylePiece(sq.Piece, sqBg, t))
	}
}

// drawBoard draws the board with rank labels on the left and file labels
// underneath. It returns the number of rows used.
func drawBoard(s tcell.Screen, x, y int, b *chess.Board, cursor chess.Position, selected *chess.Position, t Theme) int {
	rankStyle := DefStyle.Foreground(t.Rank)
	// Cells come rank 8 first, eight to a row
	for i, sq := range b.Cells() {
		row := y + i/8
		col := x + 2 + (i%8)*squareWidth
		if i%8 == 0 {
			drawRune(s, x, row, rankStyle, []rune(sq.Position.Rank().String())[0])
		}

		sqBg := squareBg(sq.Position, t)
		if selected != nil && *selected == sq.Position {
			sqBg = t.SquareHigh
		}
		if sq.Position == cursor {
			sqBg = t.SquareCursor
		}
		drawSquare(s, col, row, sq, sqBg, t)
	}

	fileStyle := DefStyle.Foreground(t.File)
	for f := 0; f < 8; f++ {
		file := chess.FromIndex(uint8(f), 0).File()
		drawText(s, x+2+f*squareWidth+squareWidth/2, y+8, fileStyle, file.String())
	}
	return 9
}

// ledgerText formats a ledger as captures followed by numbered moves.
func ledgerText(l *chess.Ledger) string {
	var b strings.Builder
	b.WriteString("Captured: ")
	caps := l.Captures()
	if len(caps) == 0 {
		b.WriteString("-")
	}
	for _, p := range caps {
		b.WriteString(p.Glyph())
	}
	b.WriteString("\n")
	for i, m := range l.Moves() {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, m)
	}
	return b.String()
}

// drawLedger draws one player's history in a bordered text view.
func drawLedger(s tcell.Screen, x, y, w, h int, l *chess.Ledger, t Theme) {
	tv := tview.NewTextView().
		SetScrollable(true).
		SetWrap(false).
		SetTextColor(t.Ledger).
		SetText(ledgerText(l))
	tv.ScrollToEnd()
	tv.SetBorder(true).
		SetBorderColor(t.Border).
		SetTitle(" " + l.Color.String() + " ").
		SetBackgroundColor(tcell.ColorDefault)
	tv.SetRect(x, y, w, h)
	tv.Draw(s)
}
