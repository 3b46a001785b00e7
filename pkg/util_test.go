package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLog(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "logs", "gameterm.log")
	logger, err := InitLog(dest, "debug", "shell")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("launched game")
	_ = logger.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "launched game") || !strings.Contains(string(data), "shell") {
		t.Errorf("unexpected log output %q", data)
	}
}

func TestInitLogDisabled(t *testing.T) {
	logger, err := InitLog("", "info", "shell")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("dropped")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
