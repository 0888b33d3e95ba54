package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"CRYPTOGRAM_DB", "CRYPTOGRAM_PREFS", "CRYPTOGRAM_LOG_LEVEL",
		"CRYPTOGRAM_TZ", "CRYPTOGRAM_AIRPLANE_MODE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CRYPTOGRAM_DB", "/tmp/puzzles.db")
	t.Setenv("CRYPTOGRAM_PREFS", "/tmp/prefs.db")
	t.Setenv("CRYPTOGRAM_LOG_LEVEL", "debug")
	t.Setenv("CRYPTOGRAM_TZ", "UTC")
	t.Setenv("CRYPTOGRAM_AIRPLANE_MODE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/puzzles.db", cfg.DBPath)
	assert.Equal(t, "/tmp/prefs.db", cfg.PrefsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.AirplaneMode)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestFromEnv_BadBool(t *testing.T) {
	t.Setenv("CRYPTOGRAM_AIRPLANE_MODE", "sometimes")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"bad level", Config{LogLevel: "loud"}, true},
		{"bad zone", Config{LogLevel: "info", TimeZone: "Mars/Olympus_Mons"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CRYPTOGRAM_LOG_LEVEL=error\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("CRYPTOGRAM_LOG_LEVEL", "")
	os.Unsetenv("CRYPTOGRAM_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	os.Unsetenv("CRYPTOGRAM_LOG_LEVEL")
}
