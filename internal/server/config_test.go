package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	require.Equal(t, "localhost:5000", cfg.ListenAddr())
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, 20, cfg.Table.BigBlind)
	require.Equal(t, 2000, cfg.Table.StartingChips)
	require.Equal(t, 5*time.Second, cfg.TableConfig().ShowdownPause)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

table {
  big_blind              = 50
  starting_chips         = 5000
  showdown_pause_seconds = 2
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9000", cfg.ListenAddr())
	require.Equal(t, "debug", cfg.Server.LogLevel)

	tc := cfg.TableConfig()
	require.Equal(t, 50, tc.BigBlind)
	require.Equal(t, 5000, tc.StartingChips)
	require.Equal(t, 2*time.Second, tc.ShowdownPause)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  big_blind = 100
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 100, cfg.Table.BigBlind)
	require.Equal(t, 2000, cfg.Table.StartingChips)
	require.Equal(t, "localhost:5000", cfg.ListenAddr())
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	path := writeConfig(t, `server { address = `)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "odd big blind",
			mutate:  func(c *Config) { c.Table.BigBlind = 25 },
			wantErr: "big_blind",
		},
		{
			name:    "zero big blind",
			mutate:  func(c *Config) { c.Table.BigBlind = 0 },
			wantErr: "big_blind",
		},
		{
			name:    "starting chips below the big blind",
			mutate:  func(c *Config) { c.Table.StartingChips = 10 },
			wantErr: "starting_chips",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
