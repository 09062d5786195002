package ledger

// OverflowPolicy decides what happens when a transaction is recorded
// against a full history.
type OverflowPolicy int8

const (
	// OverflowDrop silently discards the new record. The operation that
	// produced it still succeeds and the balance still changes; only the
	// audit trail is lost. This matches the original fixed-array behavior.
	OverflowDrop OverflowPolicy = iota

	// OverflowReject fails the whole operation with ErrHistoryFull before
	// any state changes.
	OverflowReject

	// OverflowGrow lifts the capacity limit and records everything.
	OverflowGrow
)

// String returns a human-readable name for the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowDrop:
		return "drop"
	case OverflowReject:
		return "reject"
	case OverflowGrow:
		return "grow"
	default:
		return "unknown"
	}
}

// DefaultHistoryCapacity is the per-account transaction log capacity
// unless overridden at account creation.
const DefaultHistoryCapacity = 10

// History is a bounded, ordered, append-only transaction log.
type History struct {
	records  []Transaction
	capacity int
	policy   OverflowPolicy
}

// NewHistory creates an empty history with the given capacity and policy.
// Non-positive capacities fall back to DefaultHistoryCapacity.
func NewHistory(capacity int, policy OverflowPolicy) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		records:  make([]Transaction, 0, capacity),
		capacity: capacity,
		policy:   policy,
	}
}

// full reports whether a bounded history has reached capacity.
func (h *History) full() bool {
	return h.policy != OverflowGrow && len(h.records) >= h.capacity
}

// append records tx subject to the overflow policy. Under OverflowDrop a
// full history reports success with recorded=false.
func (h *History) append(tx Transaction) (recorded bool, err error) {
	if h.full() {
		switch h.policy {
		case OverflowReject:
			return false, ErrHistoryFull
		default:
			return false, nil
		}
	}
	h.records = append(h.records, tx)
	return true, nil
}

// Len returns the number of recorded transactions.
func (h *History) Len() int {
	return len(h.records)
}

// Cap returns the configured capacity.
func (h *History) Cap() int {
	return h.capacity
}

// Policy returns the configured overflow policy.
func (h *History) Policy() OverflowPolicy {
	return h.policy
}

// Records returns a copy of the recorded transactions in append order.
func (h *History) Records() []Transaction {
	out := make([]Transaction, len(h.records))
	copy(out, h.records)
	return out
}
