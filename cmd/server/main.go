package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/gameterm/pkg"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := pkg.LoadConfig(pkg.ConfigPath())
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	logger, err := pkg.InitLog(cfg.LogPath, cfg.LogLevel, "server")
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := pkg.NewServer(cfg.SSH, logger)
	if err != nil {
		logger.Error("create server", zap.Error(err))
		color.Red("%v", err)
		os.Exit(1)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.SSH.Addr), zap.String("binary", cfg.SSH.Binary))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Error("serve", zap.Error(err))
		color.Red("%v", err)
		os.Exit(1)
	}
}
