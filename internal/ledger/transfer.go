package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Descriptions recorded on the two legs of a transfer. The legs are
// independent transaction records with no shared identifier.
const (
	transferOutDescription = "Transfer to"
	transferInDescription  = "Transfer from"
)

// Transfer withdraws amount from the account numbered fromNumber and
// deposits it into the account numbered toNumber, both looked up in the
// registry. A missing account or a failed withdrawal leaves every
// balance untouched. Once the withdrawal succeeds the deposit cannot
// fail validation, since the amount was already proven positive, so the
// operation completes fully or not at all.
func Transfer(registry *Registry, fromNumber, toNumber int, amount decimal.Decimal) error {
	from, err := registry.Find(fromNumber)
	if err != nil {
		return fmt.Errorf("transfer source %d: %w", fromNumber, err)
	}
	to, err := registry.Find(toNumber)
	if err != nil {
		return fmt.Errorf("transfer destination %d: %w", toNumber, err)
	}

	// Under OverflowReject the destination deposit can fail on a full
	// history. Check it before withdrawing so the two legs still land
	// together or not at all.
	if to.history.Policy() == OverflowReject && to.history.full() {
		return fmt.Errorf("transfer to %d: %w", toNumber, ErrHistoryFull)
	}

	if _, err := from.Withdraw(amount, transferOutDescription); err != nil {
		return fmt.Errorf("transfer from %d: %w", fromNumber, err)
	}
	if _, err := to.Deposit(amount, transferInDescription); err != nil {
		return fmt.Errorf("transfer to %d: %w", toNumber, err)
	}
	return nil
}
