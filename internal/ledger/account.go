package ledger

import "github.com/shopspring/decimal"

// MaxHolderNameLen is the maximum number of runes kept from a holder
// name. Longer input is clamped, not rejected.
const MaxHolderNameLen = 32

// Account holds a balance and a bounded transaction history for a single
// numbered holder. Account numbers are caller-assigned; uniqueness is the
// caller's concern (see Registry for the lookup consequences).
//
// Accounts are not safe for concurrent use.
type Account struct {
	number     int
	holderName string
	balance    decimal.Decimal
	history    *History
}

// Option customizes account construction.
type Option func(*accountOptions)

type accountOptions struct {
	historyCapacity int
	overflowPolicy  OverflowPolicy
}

// WithHistoryCapacity overrides the default transaction log capacity.
func WithHistoryCapacity(capacity int) Option {
	return func(o *accountOptions) {
		o.historyCapacity = capacity
	}
}

// WithOverflowPolicy overrides the default OverflowDrop policy.
func WithOverflowPolicy(policy OverflowPolicy) Option {
	return func(o *accountOptions) {
		o.overflowPolicy = policy
	}
}

// NewAccount creates an account with a zero balance and an empty
// transaction history.
func NewAccount(number int, holderName string, opts ...Option) *Account {
	options := accountOptions{
		historyCapacity: DefaultHistoryCapacity,
		overflowPolicy:  OverflowDrop,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Account{
		number:     number,
		holderName: clampRunes(holderName, MaxHolderNameLen),
		balance:    decimal.Zero,
		history:    NewHistory(options.historyCapacity, options.overflowPolicy),
	}
}

// Number returns the caller-assigned account number.
func (a *Account) Number() int {
	return a.number
}

// HolderName returns the (possibly clamped) holder name.
func (a *Account) HolderName() string {
	return a.holderName
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit adds amount to the balance and records a deposit transaction.
// Non-positive amounts fail with ErrNonPositiveAmount and change nothing.
// A full history fails with ErrHistoryFull under OverflowReject; under
// OverflowDrop the balance still changes but the returned transaction is
// nil because no record was kept.
func (a *Account) Deposit(amount decimal.Decimal, description string) (*Transaction, error) {
	return a.apply(TransactionDeposit, amount, description)
}

// Withdraw subtracts amount from the balance and records a withdrawal
// transaction. Beyond the Deposit validations, amounts exceeding the
// balance fail with ErrInsufficientFunds and change nothing.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (*Transaction, error) {
	if amount.IsPositive() && a.balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}
	return a.apply(TransactionWithdrawal, amount, description)
}

func (a *Account) apply(kind TransactionKind, amount decimal.Decimal, description string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	// Reject before touching the balance so a failed operation leaves no
	// partial state behind.
	if a.history.Policy() == OverflowReject && a.history.full() {
		return nil, ErrHistoryFull
	}

	switch kind {
	case TransactionWithdrawal:
		a.balance = a.balance.Sub(amount)
	default:
		a.balance = a.balance.Add(amount)
	}

	tx := newTransaction(kind, amount, description)
	recorded, err := a.history.append(tx)
	if err != nil {
		return nil, err
	}
	if !recorded {
		return nil, nil
	}
	return &tx, nil
}

// Transactions returns a copy of the recorded transaction history in
// append order.
func (a *Account) Transactions() []Transaction {
	return a.history.Records()
}

// TransactionCount returns the number of recorded transactions.
func (a *Account) TransactionCount() int {
	return a.history.Len()
}

// HistoryPolicy returns the account's overflow policy.
func (a *Account) HistoryPolicy() OverflowPolicy {
	return a.history.Policy()
}

// HistoryCap returns the account's transaction log capacity.
func (a *Account) HistoryCap() int {
	return a.history.Cap()
}
