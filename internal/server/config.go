package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardroom/holdem/internal/game"
)

// Config is the server's HCL configuration.
type Config struct {
	Server *ServerSettings `hcl:"server,block"`
	Table  *TableSettings  `hcl:"table,block"`
}

// ServerSettings contains process-level configuration.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings contains the table stakes and timing.
type TableSettings struct {
	BigBlind             int `hcl:"big_blind,optional"`
	StartingChips        int `hcl:"starting_chips,optional"`
	ShowdownPauseSeconds int `hcl:"showdown_pause_seconds,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     5000,
			LogLevel: "info",
		},
		Table: &TableSettings{
			BigBlind:             20,
			StartingChips:        2000,
			ShowdownPauseSeconds: 5,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to defaults
// for a missing file or any omitted block or attribute.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file %s: %s", filename, diags.Error())
	}

	var parsed Config
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file %s: %s", filename, diags.Error())
	}

	if parsed.Server != nil {
		if parsed.Server.Address != "" {
			cfg.Server.Address = parsed.Server.Address
		}
		if parsed.Server.Port != 0 {
			cfg.Server.Port = parsed.Server.Port
		}
		if parsed.Server.LogLevel != "" {
			cfg.Server.LogLevel = parsed.Server.LogLevel
		}
	}
	if parsed.Table != nil {
		if parsed.Table.BigBlind != 0 {
			cfg.Table.BigBlind = parsed.Table.BigBlind
		}
		if parsed.Table.StartingChips != 0 {
			cfg.Table.StartingChips = parsed.Table.StartingChips
		}
		if parsed.Table.ShowdownPauseSeconds != 0 {
			cfg.Table.ShowdownPauseSeconds = parsed.Table.ShowdownPauseSeconds
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Table.BigBlind < 2 || c.Table.BigBlind%2 != 0 {
		return fmt.Errorf("big_blind must be a positive even number, got %d", c.Table.BigBlind)
	}
	if c.Table.StartingChips < c.Table.BigBlind {
		return fmt.Errorf("starting_chips (%d) must cover at least the big blind (%d)",
			c.Table.StartingChips, c.Table.BigBlind)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Server.Port)
	}
	return nil
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// TableConfig converts the file settings into the engine's configuration.
func (c *Config) TableConfig() game.Config {
	return game.Config{
		BigBlind:      c.Table.BigBlind,
		StartingChips: c.Table.StartingChips,
		ShowdownPause: time.Duration(c.Table.ShowdownPauseSeconds) * time.Second,
	}
}
