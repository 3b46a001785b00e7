package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/gameterm/pkg"
	"github.com/qnkhuat/gameterm/pkg/chess"
	"github.com/qnkhuat/gameterm/pkg/gui"
	"github.com/qnkhuat/gameterm/pkg/shell"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitFault = 1
	exitPanic = 2
)

var errNotTerminal = errors.New("gameterm: stdin is not a terminal")

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := pkg.LoadConfig(pkg.ConfigPath())
	if err != nil {
		return fail(err)
	}

	logger, err := pkg.InitLog(cfg.LogPath, cfg.LogLevel, "gameterm")
	if err != nil {
		return fail(err)
	}
	defer logger.Sync()

	// Panics are re-raised by the shell after the terminal is restored, so
	// the message lands on a sane screen.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", zap.Any("panic", r), zap.Stack("stack"))
			color.Red("gameterm: internal error: %v", r)
			code = exitPanic
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fail(errNotTerminal)
	}

	theme, err := gui.ImportThemes(cfg.Theme, cfg.Themes)
	if err != nil {
		return fail(err)
	}

	newBoard, err := boardFactory(cfg.StartFEN)
	if err != nil {
		return fail(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fail(fmt.Errorf("gameterm: open screen: %w", err))
	}

	c := shell.New(shell.DefaultCatalog(), shell.DefaultLaunchers(newBoard, theme, logger), theme, logger)
	c.TickInterval = cfg.TickInterval

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		for sig := range sigc {
			logger.Info("signal received", zap.Stringer("signal", sig))
			if err := shell.RequestQuit(screen); err != nil {
				logger.Warn("could not forward quit", zap.Error(err))
			}
		}
	}()

	logger.Info("gameterm started", zap.String("theme", theme.Name))
	if err := c.Run(screen); err != nil {
		return fail(err)
	}
	logger.Info("gameterm exited")
	return exitOK
}

// boardFactory parses the configured start position once, before the screen
// is taken, and hands every new game its own copy.
func boardFactory(fen string) (func() *chess.Board, error) {
	if fen == "" {
		return chess.NewStandardBoard, nil
	}
	start, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("gameterm: start_fen: %w", err)
	}
	return func() *chess.Board {
		b := *start
		return &b
	}, nil
}

func fail(err error) int {
	color.Red("%v", err)
	return exitFault
}
