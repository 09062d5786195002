package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- History tests --

func TestNewHistory_NonPositiveCapacityFallsBack(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		h := NewHistory(capacity, OverflowDrop)
		assert.Equal(t, DefaultHistoryCapacity, h.Cap(), "capacity %d", capacity)
	}
}

func TestHistory_RecordsReturnsCopy(t *testing.T) {
	h := NewHistory(4, OverflowDrop)
	recorded, err := h.append(newTransaction(TransactionDeposit, dec("1"), "first"))
	assert.True(t, recorded)
	assert.NoError(t, err)

	records := h.Records()
	records[0].Description = "mutated"

	assert.Equal(t, "first", h.Records()[0].Description)
}

func TestOverflowPolicy_String(t *testing.T) {
	assert.Equal(t, "drop", OverflowDrop.String())
	assert.Equal(t, "reject", OverflowReject.String())
	assert.Equal(t, "grow", OverflowGrow.String())
}
