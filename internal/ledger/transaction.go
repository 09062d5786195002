package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction record.
type TransactionKind int8

const (
	TransactionDeposit TransactionKind = iota
	TransactionWithdrawal
)

// String returns a human-readable name for the kind.
func (k TransactionKind) String() string {
	switch k {
	case TransactionDeposit:
		return "deposit"
	case TransactionWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// MaxDescriptionLen is the maximum number of runes kept from a
// transaction description. Longer input is clamped, not rejected.
const MaxDescriptionLen = 64

// Transaction is an immutable record of a single deposit or withdrawal.
// It is created only as a side effect of a successful account operation
// and never mutated afterwards.
type Transaction struct {
	ID          uuid.UUID
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Kind:        kind,
		Amount:      amount,
		Description: clampRunes(description, MaxDescriptionLen),
		CreatedAt:   time.Now(),
	}
}

// clampRunes truncates s to at most limit runes.
func clampRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
