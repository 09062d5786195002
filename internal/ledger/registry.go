package ledger

// Registry is an ordered collection of accounts searchable by account
// number. It does not enforce number uniqueness: Find returns the first
// match in insertion order, which is the defined behavior when
// duplicates exist.
//
// The registry owns nothing beyond the references it is given and is not
// safe for concurrent use.
type Registry struct {
	accounts []*Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an account to the registry.
func (r *Registry) Add(account *Account) {
	r.accounts = append(r.accounts, account)
}

// Find returns the first account with the given number in insertion
// order, or ErrAccountNotFound if none matches.
func (r *Registry) Find(number int) (*Account, error) {
	for _, account := range r.accounts {
		if account.Number() == number {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Accounts returns the registered accounts in insertion order.
func (r *Registry) Accounts() []*Account {
	out := make([]*Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}
