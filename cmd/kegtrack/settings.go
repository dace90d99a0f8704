// Settings loading and logger construction for the kegtrack CLI.
//
// Kegtrack deliberately carries no config file and no flag that changes
// the behavior of the menu or the store; settings cover stderr logging
// only. Values resolve flag > KEGTRACK_* environment > default.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "KEGTRACK"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// loadSettings builds the settings view from defaults, environment, and
// the given flag set.
func loadSettings(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
			return nil, fmt.Errorf("bind log-level flag: %w", err)
		}
	}

	return v, nil
}

// newLogger builds the stderr logger. Stdout belongs to the menu, so all
// logging goes to stderr. Each run is tagged with a run_id so transcripts
// from repeated runs can be told apart.
func newLogger(settings *viper.Viper) (logrus.FieldLogger, error) {
	level, err := logrus.ParseLevel(settings.GetString(cfgKeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	if settings.GetString(cfgKeyLogFormat) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log.WithField("run_id", uuid.NewString()), nil
}
