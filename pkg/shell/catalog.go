package shell

import (
	"github.com/qnkhuat/gameterm/pkg/chess"
	"github.com/qnkhuat/gameterm/pkg/gui"
	"github.com/qnkhuat/gameterm/pkg/menu"
	"go.uber.org/zap"
)

const (
	HandleChess       menu.Handle = "chess"
	HandleMinesweeper menu.Handle = "minesweeper"
)

// DefaultCatalog is the list shown in the menu. Minesweeper has no launcher
// yet and only produces a notice.
func DefaultCatalog() []menu.Entry {
	return []menu.Entry{
		{Label: "Chess", Handle: HandleChess},
		{Label: "Minesweeper", Handle: HandleMinesweeper},
	}
}

// DefaultLaunchers wires the catalog handles to their apps. newBoard is
// called once per launch so every session starts from scratch.
func DefaultLaunchers(newBoard func() *chess.Board, theme gui.Theme, logger *zap.Logger) map[menu.Handle]Launcher {
	if newBoard == nil {
		newBoard = chess.NewStandardBoard
	}
	return map[menu.Handle]Launcher{
		HandleChess: func() App {
			return gui.NewChessApp(newBoard(), theme, logger)
		},
	}
}
