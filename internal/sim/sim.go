// Package sim runs the scripted demo scenario: three accounts, a fixed
// sequence of deposits and withdrawals, one transfer, and a reporting
// pass.
package sim

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-sim/internal/config"
	"github.com/carson-networks/ledger-sim/internal/ledger"
	"github.com/carson-networks/ledger-sim/internal/logging"
	"github.com/carson-networks/ledger-sim/internal/report"
)

type seedAccount struct {
	number  int
	holder  string
	deposit decimal.Decimal
}

type seedWithdrawal struct {
	number      int
	amount      decimal.Decimal
	description string
}

var (
	seedAccounts = []seedAccount{
		{number: 1001, holder: "Alice", deposit: decimal.NewFromInt(500)},
		{number: 1002, holder: "Bob", deposit: decimal.NewFromInt(1000)},
		{number: 1003, holder: "Charlie", deposit: decimal.NewFromInt(750)},
	}

	seedWithdrawals = []seedWithdrawal{
		{number: 1002, amount: decimal.NewFromInt(200), description: "withdrawal"},
		{number: 1003, amount: decimal.NewFromInt(50), description: "shopping"},
	}

	transferFrom   = 1001
	transferTo     = 1003
	transferAmount = decimal.NewFromInt(150)
)

// Run executes the scenario against a fresh registry and returns it so
// callers can inspect the final state.
func Run(cfg *config.Config, logger *logrus.Logger, reporter report.Reporter) (*ledger.Registry, error) {
	registry := ledger.NewRegistry()
	logData := logging.NewLogData(logger)
	logData.AddData("overflowPolicy", cfg.OverflowPolicy.String())
	logData.AddData("historyCapacity", cfg.HistoryCapacity)

	endTimer := logData.AddTiming("scenario_ms")
	defer endTimer()

	err := logging.PhaseWrapper("Seed", logger, logData, func(*logging.LogData) error {
		return seed(registry, cfg)
	})
	if err != nil {
		return nil, err
	}

	err = logging.PhaseWrapper("Operations", logger, logData, func(*logging.LogData) error {
		return operations(registry)
	})
	if err != nil {
		return nil, err
	}

	err = logging.PhaseWrapper("Report", logger, logData, func(*logging.LogData) error {
		for _, account := range registry.Accounts() {
			reporter.AccountDetails(account)
			reporter.TransactionHistory(account)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logData.AddData("accounts", registry.Len())
	logData.Log().Info("Scenario.Complete")
	return registry, nil
}

func seed(registry *ledger.Registry, cfg *config.Config) error {
	for _, s := range seedAccounts {
		account := ledger.NewAccount(s.number, s.holder,
			ledger.WithHistoryCapacity(cfg.HistoryCapacity),
			ledger.WithOverflowPolicy(cfg.OverflowPolicy),
		)
		if _, err := account.Deposit(s.deposit, "Initial"); err != nil {
			return fmt.Errorf("seed account %d: %w", s.number, err)
		}
		registry.Add(account)
	}
	return nil
}

func operations(registry *ledger.Registry) error {
	for _, w := range seedWithdrawals {
		account, err := registry.Find(w.number)
		if err != nil {
			return fmt.Errorf("withdraw from %d: %w", w.number, err)
		}
		if _, err := account.Withdraw(w.amount, w.description); err != nil {
			return fmt.Errorf("withdraw from %d: %w", w.number, err)
		}
	}

	return ledger.Transfer(registry, transferFrom, transferTo, transferAmount)
}
