package ledger

import "errors"

// Domain errors returned by account and registry operations. Callers match
// them with errors.Is; none of them indicate a partial state change.
var (
	// ErrNonPositiveAmount rejects deposits and withdrawals of zero or
	// negative amounts.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds rejects withdrawals that would take the
	// balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound reports a registry lookup miss.
	ErrAccountNotFound = errors.New("account not found")

	// ErrHistoryFull reports a full transaction history under the
	// OverflowReject policy.
	ErrHistoryFull = errors.New("transaction history full")
)
