package pkg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultSSHAddr      = ":2222"
	ServerIdleTimeout   = 5 * time.Minute
)

// ThemeHex is a color theme as written in the config file. Colors are
// anything tcell.GetColor understands: names or #rrggbb.
type ThemeHex struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Selected     string `yaml:"selected"`
	Unselected   string `yaml:"unselected"`
	Notice       string `yaml:"notice"`
	Border       string `yaml:"border"`
	SquareDark   string `yaml:"square_dark"`
	SquareLight  string `yaml:"square_light"`
	SquareCursor string `yaml:"square_cursor"`
	SquareHigh   string `yaml:"square_high"`
	White        string `yaml:"white"`
	Black        string `yaml:"black"`
	Rank         string `yaml:"rank"`
	File         string `yaml:"file"`
	Ledger       string `yaml:"ledger"`
}

type SSHConfig struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	Binary      string        `yaml:"binary"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

type Config struct {
	LogPath      string        `yaml:"log_path"`
	LogLevel     string        `yaml:"log_level"`
	Theme        string        `yaml:"theme"`
	Themes       []ThemeHex    `yaml:"themes"`
	TickInterval time.Duration `yaml:"tick_interval"`
	StartFEN     string        `yaml:"start_fen"`
	SSH          SSHConfig     `yaml:"ssh"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		LogPath:      filepath.Join(configDir(), "gameterm.log"),
		LogLevel:     "info",
		Theme:        "basic",
		TickInterval: DefaultTickInterval,
		SSH: SSHConfig{
			Addr:        DefaultSSHAddr,
			HostKey:     filepath.Join(homeDir, ".ssh", "id_rsa"),
			Binary:      "gameterm",
			IdleTimeout: ServerIdleTimeout,
		},
	}
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "gameterm")
}

// ConfigPath is where the config file is read from. GAMETERM_CONFIG overrides
// the default location.
func ConfigPath() string {
	if p := strings.TrimSpace(os.Getenv("GAMETERM_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.yaml")
}

// LoadConfig reads path on top of the defaults and then applies environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("GAMETERM_LOG")); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMETERM_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMETERM_THEME")); v != "" {
		cfg.Theme = v
	}

	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.SSH.HostKey = expandPath(cfg.SSH.HostKey)
	if cfg.TickInterval < 0 {
		cfg.TickInterval = 0
	}
	if cfg.SSH.IdleTimeout <= 0 {
		cfg.SSH.IdleTimeout = ServerIdleTimeout
	}
	if cfg.SSH.Addr == "" {
		cfg.SSH.Addr = DefaultSSHAddr
	}

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, path[1:])
}
