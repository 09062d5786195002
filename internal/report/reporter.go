// Package report renders account state for human consumption. The core
// ledger calls reporters but never formats anything itself.
package report

import "github.com/carson-networks/ledger-sim/internal/ledger"

// Reporter renders account details and transaction histories. The
// output format is implementation-defined.
type Reporter interface {
	AccountDetails(account *ledger.Account)
	TransactionHistory(account *ledger.Account)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) AccountDetails(*ledger.Account)     {}
func (NopReporter) TransactionHistory(*ledger.Account) {}
