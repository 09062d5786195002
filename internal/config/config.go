package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-sim/internal/ledger"
)

// Reporter selects how account state is rendered after the scenario.
const (
	ReporterLog  = "log"
	ReporterDump = "dump"
	ReporterNop  = "nop"
)

type Config struct {
	HistoryCapacity int
	OverflowPolicy  ledger.OverflowPolicy
	LogLevel        logrus.Level
	Reporter        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should match the reference
	// scenario: ten-record histories that silently drop on overflow.
	env := Config{
		HistoryCapacity: ledger.DefaultHistoryCapacity,
		OverflowPolicy:  ledger.OverflowDrop,
		LogLevel:        logrus.InfoLevel,
		Reporter:        ReporterLog,
	}

	envHistoryCapacity := os.Getenv("LEDGER_HISTORY_CAPACITY")
	envOverflowPolicy := os.Getenv("LEDGER_OVERFLOW_POLICY")
	envLogLevel := os.Getenv("LEDGER_LOG_LEVEL")
	envReporter := os.Getenv("LEDGER_REPORTER")

	if len(envHistoryCapacity) != 0 {
		capacity, err := strconv.Atoi(envHistoryCapacity)
		if err != nil || capacity <= 0 {
			return nil, fmt.Errorf("invalid LEDGER_HISTORY_CAPACITY %q", envHistoryCapacity)
		}
		env.HistoryCapacity = capacity
	}

	if len(envOverflowPolicy) != 0 {
		policy, err := parseOverflowPolicy(envOverflowPolicy)
		if err != nil {
			return nil, err
		}
		env.OverflowPolicy = policy
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LEDGER_LOG_LEVEL %q", envLogLevel)
		}
		env.LogLevel = level
	}

	if len(envReporter) != 0 {
		switch envReporter {
		case ReporterLog, ReporterDump, ReporterNop:
			env.Reporter = envReporter
		default:
			return nil, fmt.Errorf("invalid LEDGER_REPORTER %q", envReporter)
		}
	}

	return &env, nil
}

func parseOverflowPolicy(value string) (ledger.OverflowPolicy, error) {
	switch value {
	case "drop":
		return ledger.OverflowDrop, nil
	case "reject":
		return ledger.OverflowReject, nil
	case "grow":
		return ledger.OverflowGrow, nil
	default:
		return 0, fmt.Errorf("invalid LEDGER_OVERFLOW_POLICY %q", value)
	}
}
