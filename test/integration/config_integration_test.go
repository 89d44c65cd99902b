//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

// TestConfig_Defaults verifies the built-in defaults produce a valid
// configuration without any files or environment.
func TestConfig_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "quoteboard", cfg.App.Name)
	assert.Equal(t, int64(4), cfg.Board.DayScale)
	assert.Equal(t, "2008-10-01", cfg.Board.Epoch)
	assert.Equal(t, 20, cfg.Board.PageSize)
	assert.Equal(t, 20, cfg.Board.MaxRankPages)
	assert.Equal(t, 3, cfg.Storage.RetryAttempts)
	assert.Equal(t, 25*time.Millisecond, cfg.Storage.RetryBackoff)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "X-User-ID", cfg.Auth.SubjectHeader)

	epoch, err := cfg.Board.EpochTime()
	require.NoError(t, err)
	assert.Equal(t, 2008, epoch.Year())
}

// TestConfig_EnvironmentOverrides verifies APP_ environment variables
// override the defaults.
func TestConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_BOARD_EPOCH", "2020-01-01")
	t.Setenv("APP_STORAGE_PATH", "/tmp/override.db")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "2020-01-01", cfg.Board.Epoch)
	assert.Equal(t, "/tmp/override.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestConfig_InvalidValues verifies validation rejects bad settings.
func TestConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		value   string
		wantErr string
	}{
		{
			name:    "bad epoch format",
			envKey:  "APP_BOARD_EPOCH",
			value:   "October 1st",
			wantErr: "board.epoch",
		},
		{
			name:    "bad log level",
			envKey:  "APP_LOG_LEVEL",
			value:   "verbose",
			wantErr: "log.level",
		},
		{
			name:    "bad log format",
			envKey:  "APP_LOG_FORMAT",
			value:   "xml",
			wantErr: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.value)

			cfg, err := config.Load("")
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
