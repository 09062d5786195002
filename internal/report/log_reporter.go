package report

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-sim/internal/ledger"
)

// LogReporter renders accounts as structured logrus entries.
type LogReporter struct {
	Logger *logrus.Logger
}

// NewLogReporter creates a LogReporter writing to the given logger.
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	return &LogReporter{Logger: logger}
}

// AccountDetails emits one entry summarizing the account.
func (r *LogReporter) AccountDetails(account *ledger.Account) {
	r.Logger.WithFields(logrus.Fields{
		"accountNumber":    account.Number(),
		"holderName":       account.HolderName(),
		"balance":          account.Balance().String(),
		"transactionCount": account.TransactionCount(),
	}).Info("Report.AccountDetails")
}

// TransactionHistory emits one entry per recorded transaction.
func (r *LogReporter) TransactionHistory(account *ledger.Account) {
	for i, tx := range account.Transactions() {
		r.Logger.WithFields(logrus.Fields{
			"accountNumber": account.Number(),
			"index":         i,
			"transactionID": tx.ID.String(),
			"kind":          tx.Kind.String(),
			"amount":        tx.Amount.String(),
			"description":   tx.Description,
		}).Info("Report.Transaction")
	}
}
