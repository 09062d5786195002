package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-sim/internal/ledger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LEDGER_HISTORY_CAPACITY", "")
	t.Setenv("LEDGER_OVERFLOW_POLICY", "")
	t.Setenv("LEDGER_LOG_LEVEL", "")
	t.Setenv("LEDGER_REPORTER", "")
}

// -- ProcessEnvironmentVariables tests --

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ProcessEnvironmentVariables()

	assert.NoError(t, err)
	assert.Equal(t, ledger.DefaultHistoryCapacity, cfg.HistoryCapacity)
	assert.Equal(t, ledger.OverflowDrop, cfg.OverflowPolicy)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ReporterLog, cfg.Reporter)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_HISTORY_CAPACITY", "25")
	t.Setenv("LEDGER_OVERFLOW_POLICY", "reject")
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_REPORTER", "dump")

	cfg, err := ProcessEnvironmentVariables()

	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.HistoryCapacity)
	assert.Equal(t, ledger.OverflowReject, cfg.OverflowPolicy)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, ReporterDump, cfg.Reporter)
}

func TestProcessEnvironmentVariables_GrowPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_OVERFLOW_POLICY", "grow")

	cfg, err := ProcessEnvironmentVariables()

	assert.NoError(t, err)
	assert.Equal(t, ledger.OverflowGrow, cfg.OverflowPolicy)
}

func TestProcessEnvironmentVariables_InvalidCapacity(t *testing.T) {
	clearEnv(t)

	for _, value := range []string{"abc", "0", "-3"} {
		t.Setenv("LEDGER_HISTORY_CAPACITY", value)

		cfg, err := ProcessEnvironmentVariables()

		assert.Error(t, err, "capacity %q", value)
		assert.Nil(t, cfg)
	}
}

func TestProcessEnvironmentVariables_InvalidPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_OVERFLOW_POLICY", "explode")

	cfg, err := ProcessEnvironmentVariables()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestProcessEnvironmentVariables_InvalidReporter(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_REPORTER", "carrier-pigeon")

	cfg, err := ProcessEnvironmentVariables()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
