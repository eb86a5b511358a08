// Package config loads the module configuration from
// ~/.config/waybar-tailscale/config.yaml.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Zay931/waybar-tailscale-module/internal/pausestore"
	"github.com/Zay931/waybar-tailscale-module/internal/session"
	"github.com/Zay931/waybar-tailscale-module/internal/waybar"
)

// Config mirrors the YAML file. Durations are strings ("5s", "2m") and
// parsed on conversion; an invalid value falls back to its default
// rather than failing the render.
type Config struct {
	PauseMinutes  int    `yaml:"pause_minutes"`
	PollSeconds   int    `yaml:"poll_seconds"` // watch dashboard refresh
	StatusTimeout string `yaml:"status_timeout"`
	ActionTimeout string `yaml:"action_timeout"`
	TailscalePath string `yaml:"tailscale_path"`
	UseSudo       *bool  `yaml:"use_sudo"`
	StateFile     string `yaml:"state_file"`
	Icons         Icons  `yaml:"icons"`
}

// Icons overrides the bar glyphs.
type Icons struct {
	Connected    string `yaml:"connected"`
	Disconnected string `yaml:"disconnected"`
	Paused       string `yaml:"paused"`
	Label        string `yaml:"label"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		PauseMinutes:  5,
		PollSeconds:   5,
		StatusTimeout: "5s",
		ActionTimeout: "15s",
		TailscalePath: "tailscale",
		StateFile:     pausestore.DefaultPath(),
	}
}

// DefaultPath returns ~/.config/waybar-tailscale/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".config", "waybar-tailscale", "config.yaml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults. The returned Config is
// always usable, even when an error is also returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.TailscalePath == "" {
		cfg.TailscalePath = "tailscale"
	}
	if cfg.StateFile == "" {
		cfg.StateFile = pausestore.DefaultPath()
	}
	return cfg, nil
}

// Session converts the file values into the machine configuration.
func (c *Config) Session() session.Config {
	sudo := true
	if c.UseSudo != nil {
		sudo = *c.UseSudo
	}
	return session.Config{
		PauseDuration: time.Duration(c.PauseMinutes) * time.Minute,
		StatusTimeout: parseDuration(c.StatusTimeout, session.DefaultStatusTimeout),
		ActionTimeout: parseDuration(c.ActionTimeout, session.DefaultActionTimeout),
		TailscalePath: c.TailscalePath,
		UseSudo:       sudo,
	}
}

// Style converts the icon overrides into the renderer style.
func (c *Config) Style() waybar.Style {
	style := waybar.DefaultStyle()
	if c.Icons.Connected != "" {
		style.ConnectedIcon = c.Icons.Connected
	}
	if c.Icons.Disconnected != "" {
		style.DisconnectedIcon = c.Icons.Disconnected
	}
	if c.Icons.Paused != "" {
		style.PausedIcon = c.Icons.Paused
	}
	if c.Icons.Label != "" {
		style.Label = c.Icons.Label
	}
	if c.PauseMinutes > 0 {
		style.PauseDuration = time.Duration(c.PauseMinutes) * time.Minute
	}
	return style
}

// PollInterval returns the watch dashboard refresh interval.
func (c *Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("config: bad duration %q, using %s", s, fallback)
		return fallback
	}
	return d
}

// scaffold is the commented template --init writes.
const scaffold = `# waybar-tailscale configuration.
# Every field is optional; this file shows the defaults.

pause_minutes: 5
poll_seconds: 5

status_timeout: 5s
action_timeout: 15s

tailscale_path: tailscale
use_sudo: true

# state_file: /tmp/waybar-tailscale-pause.json

# icons:
#   connected: 🟢
#   disconnected: 🔴
#   paused: ⏸
#   label: TS
`

// WriteScaffold writes the commented template to path, or the default
// location when path is empty. Refuses to overwrite an existing file.
func WriteScaffold(path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return path, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(scaffold), 0644); err != nil {
		return path, err
	}
	return path, nil
}
