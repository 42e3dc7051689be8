// Package domain contains the core business entities and types.
package domain

// Account represents a single ledger entry.
//
// An ID of 0 means "unassigned": the repository picks the next free
// identifier when the account is inserted. Any other value is kept as-is.
// Balance carries no currency unit and may be negative; the repository
// never validates it.
type Account struct {
	ID      uint64  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// NewAccount builds an account record. Pass id 0 to let the repository
// assign one on insert.
func NewAccount(id uint64, name string, balance float64) Account {
	return Account{
		ID:      id,
		Name:    name,
		Balance: balance,
	}
}
