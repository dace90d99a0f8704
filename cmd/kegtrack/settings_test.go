package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := loadSettings(newTestFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "warn", settings.GetString(cfgKeyLogLevel))
	assert.Equal(t, "text", settings.GetString(cfgKeyLogFormat))
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("KEGTRACK_LOG_LEVEL", "debug")
	t.Setenv("KEGTRACK_LOG_FORMAT", "json")

	settings, err := loadSettings(newTestFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.GetString(cfgKeyLogLevel))
	assert.Equal(t, "json", settings.GetString(cfgKeyLogFormat))
}

func TestLoadSettingsFlagBeatsEnv(t *testing.T) {
	t.Setenv("KEGTRACK_LOG_LEVEL", "debug")

	settings, err := loadSettings(newTestFlags(t, "--log-level", "info"))
	require.NoError(t, err)

	assert.Equal(t, "info", settings.GetString(cfgKeyLogLevel))
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	t.Setenv("KEGTRACK_LOG_LEVEL", "chatty")

	settings, err := loadSettings(newTestFlags(t))
	require.NoError(t, err)

	_, err = newLogger(settings)
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	settings, err := loadSettings(newTestFlags(t, "--log-level", "debug"))
	require.NoError(t, err)

	log, err := newLogger(settings)
	require.NoError(t, err)

	entry, ok := log.(*logrus.Entry)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.Contains(t, entry.Data, "run_id")
}
