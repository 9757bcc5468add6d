package app

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := configFromEnv(discardLogger())
	def := DefaultConfig()

	assert.Equal(t, def.Addr, cfg.Addr)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.Sim, cfg.Sim)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("FIELDSIM_ADDR", ":9999")
	t.Setenv("FIELDSIM_TICK_RATE", "50")
	t.Setenv("FIELDSIM_MAX_SPEED", "1.5")
	t.Setenv("FIELDSIM_LOG_LEVEL", "debug")

	cfg := configFromEnv(discardLogger())

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 50, cfg.Sim.TickRate)
	assert.Equal(t, float32(1.5), cfg.Sim.MaxSpeed)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestConfigFromEnvRejectsInvalidValues(t *testing.T) {
	t.Setenv("FIELDSIM_TICK_RATE", "fast")
	t.Setenv("FIELDSIM_MAX_SPEED", "-2")
	t.Setenv("FIELDSIM_LOG_LEVEL", "chatty")

	cfg := configFromEnv(discardLogger())
	def := DefaultConfig()

	assert.Equal(t, def.Sim.TickRate, cfg.Sim.TickRate)
	assert.Equal(t, def.Sim.MaxSpeed, cfg.Sim.MaxSpeed)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
}
