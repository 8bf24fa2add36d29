package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Jerusalem", cfg.Store.Timezone)
	assert.Equal(t, 14, cfg.Calendar.LookaheadDays)
	assert.True(t, cfg.Calendar.RestDayEveReduced)
	assert.Equal(t, "18:00", cfg.Cutoff.Regular)
	assert.Equal(t, "12:00", cfg.Cutoff.Reduced)
	assert.Equal(t, []string{SourceClosures, SourceHebcal}, cfg.Calendar.Sources)

	day, err := cfg.RestWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, day)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[store]
timezone = "Europe/Berlin"

[calendar]
rest_day = "sunday"
lookahead_days = 30
shift_policy = "permanent"
sources = ["static"]

[[calendar.holidays]]
date = "2026-12-25"
name = "Christmas"

[cutoff]
regular = "17:30"
reduced = "11:00"
window_start = "10:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Calendar.LookaheadDays)
	assert.Equal(t, "permanent", cfg.Calendar.ShiftPolicy)
	require.Len(t, cfg.Calendar.Holidays, 1)
	assert.Equal(t, "Christmas", cfg.Calendar.Holidays[0].Name)
	assert.Equal(t, "17:30", cfg.Cutoff.Regular)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	day, err := cfg.RestWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown timezone", body: "[store]\ntimezone = \"Mars/Olympus\""},
		{name: "unknown rest day", body: "[calendar]\nrest_day = \"someday\""},
		{name: "lookahead too long", body: "[calendar]\nlookahead_days = 100"},
		{name: "lookahead zero", body: "[calendar]\nlookahead_days = 0"},
		{name: "unknown shift policy", body: "[calendar]\nshift_policy = \"never\""},
		{name: "unknown source", body: "[calendar]\nsources = [\"oracle\"]"},
		{name: "bad holiday date", body: "[[calendar.holidays]]\ndate = \"25.12.2026\"\nname = \"x\""},
		{name: "bad cutoff", body: "[cutoff]\nregular = \"25:00\""},
		{name: "bad cron", body: "[sweep]\nenabled = true\ncron = \"every day\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadInvalidPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, ""))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
