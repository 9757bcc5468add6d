package app

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"fieldsim/server/internal/sim"
)

// Config collects everything Run needs. Fields left zero fall back to
// defaults, so tests can construct partial configs.
type Config struct {
	Addr     string
	LogLevel logrus.Level
	Sim      sim.Config
}

// DefaultConfig returns the server defaults: listen on :8080, info logging,
// standard field.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: logrus.InfoLevel,
		Sim:      sim.DefaultConfig(),
	}
}

// configFromEnv layers environment overrides on top of the defaults.
// Invalid values are logged and ignored rather than failing startup.
func configFromEnv(log logrus.FieldLogger) Config {
	cfg := DefaultConfig()

	if raw := os.Getenv("FIELDSIM_ADDR"); raw != "" {
		cfg.Addr = raw
	}

	if raw := os.Getenv("FIELDSIM_TICK_RATE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.Sim.TickRate = value
		} else {
			log.WithField("value", raw).Warn("invalid FIELDSIM_TICK_RATE, using default")
		}
	}

	if raw := os.Getenv("FIELDSIM_MAX_SPEED"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 32); err == nil && value > 0 {
			cfg.Sim.MaxSpeed = float32(value)
		} else {
			log.WithField("value", raw).Warn("invalid FIELDSIM_MAX_SPEED, using default")
		}
	}

	if raw := os.Getenv("FIELDSIM_LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		} else {
			log.WithField("value", raw).Warn("invalid FIELDSIM_LOG_LEVEL, using default")
		}
	}

	return cfg
}
