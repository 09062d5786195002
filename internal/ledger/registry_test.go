package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- Find tests --

func TestFind_Match(t *testing.T) {
	registry := NewRegistry()
	alice := NewAccount(1001, "Alice")
	bob := NewAccount(1002, "Bob")
	registry.Add(alice)
	registry.Add(bob)

	found, err := registry.Find(1002)

	assert.NoError(t, err)
	assert.Same(t, bob, found)
}

func TestFind_Miss(t *testing.T) {
	registry := NewRegistry()
	registry.Add(NewAccount(1001, "Alice"))

	found, err := registry.Find(9999)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, found)
}

func TestFind_EmptyRegistry(t *testing.T) {
	registry := NewRegistry()

	found, err := registry.Find(1001)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, found)
}

func TestFind_DuplicateNumbersFirstMatchWins(t *testing.T) {
	registry := NewRegistry()
	first := NewAccount(1001, "First")
	second := NewAccount(1001, "Second")
	registry.Add(first)
	registry.Add(second)

	found, err := registry.Find(1001)

	assert.NoError(t, err)
	assert.Same(t, first, found, "first match in insertion order wins")
}

// -- Accounts tests --

func TestAccounts_InsertionOrder(t *testing.T) {
	registry := NewRegistry()
	accounts := []*Account{
		NewAccount(3, "C"),
		NewAccount(1, "A"),
		NewAccount(2, "B"),
	}
	for _, a := range accounts {
		registry.Add(a)
	}

	listed := registry.Accounts()

	assert.Equal(t, 3, registry.Len())
	assert.Len(t, listed, 3)
	for i := range accounts {
		assert.Same(t, accounts[i], listed[i])
	}
}

func TestAccounts_CopyDoesNotAliasInternalSlice(t *testing.T) {
	registry := NewRegistry()
	registry.Add(NewAccount(1, "A"))

	listed := registry.Accounts()
	listed[0] = nil

	found, err := registry.Find(1)
	assert.NoError(t, err)
	assert.NotNil(t, found)
}
