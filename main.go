package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-sim/internal/config"
	"github.com/carson-networks/ledger-sim/internal/logging"
	"github.com/carson-networks/ledger-sim/internal/report"
	"github.com/carson-networks/ledger-sim/internal/sim"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("ledger-sim starting")

	var reporter report.Reporter
	switch envConfig.Reporter {
	case config.ReporterDump:
		reporter = report.NewDumpReporter(os.Stdout)
	case config.ReporterNop:
		reporter = report.NopReporter{}
	default:
		reporter = report.NewLogReporter(logger)
	}

	if _, err := sim.Run(envConfig, logger, reporter); err != nil {
		logger.WithError(err).Fatal("sim.Run")
	}
}
