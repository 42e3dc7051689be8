package repository

import (
	"context"
	"fmt"

	"github.com/gobank-labs/minibank/internal/domain"
)

// accountsRepo implements the AccountsRepo interface with an in-memory map.
//
// The repository is owned by a single caller and does no locking of its own.
// It never logs; every failure is reported to the caller as a wrapped
// sentinel error from the domain package.
type accountsRepo struct {
	accounts map[uint64]*domain.Account
	// nextID is only ever advanced, never rewound, so auto-assigned ids are
	// unique for the lifetime of the repository even across removals.
	nextID uint64
}

// NewAccountsRepo creates an empty in-memory accounts repository.
// Auto-assigned ids start at 1; 0 stays reserved as the "unassigned" marker.
func NewAccountsRepo() AccountsRepo {
	return &accountsRepo{
		accounts: make(map[uint64]*domain.Account),
		nextID:   1,
	}
}

// Insert stores a new account and returns its final id.
//
// The auto id is assigned before the collision check, so a failed auto
// insert can still advance the counter. An explicit id never touches the
// counter, which means a caller picking ids above it can make a later auto
// insert fail; callers rely on the error, not on the counter.
func (r *accountsRepo) Insert(_ context.Context, acct domain.Account) (uint64, error) {
	if acct.ID == 0 {
		acct.ID = r.nextID
		r.nextID++
	}

	if _, exists := r.accounts[acct.ID]; exists {
		return 0, fmt.Errorf("insert account %d: %w", acct.ID, domain.ErrDuplicateID)
	}

	r.accounts[acct.ID] = &acct
	return acct.ID, nil
}

// Remove deletes an account by id and hands the stored record back to the caller.
func (r *accountsRepo) Remove(_ context.Context, id uint64) (domain.Account, error) {
	acct, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, fmt.Errorf("remove account %d: %w", id, domain.ErrAccountNotFound)
	}

	delete(r.accounts, id)
	return *acct, nil
}

// Get retrieves a snapshot of an account. Callers cannot reach the stored
// record through it.
func (r *accountsRepo) Get(_ context.Context, id uint64) (domain.Account, bool) {
	acct, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, false
	}
	return *acct, true
}

// GetMut retrieves the stored record itself; changes through the returned
// pointer are changes to the repository's copy.
func (r *accountsRepo) GetMut(_ context.Context, id uint64) (*domain.Account, bool) {
	acct, ok := r.accounts[id]
	return acct, ok
}

// ListAll retrieves snapshots of every stored account. Map iteration order
// is not part of the contract.
func (r *accountsRepo) ListAll(_ context.Context) []domain.Account {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, acct := range r.accounts {
		out = append(out, *acct)
	}
	return out
}

// UpdateBalance overwrites the balance of a stored account. No validation:
// any value, including a negative one, is accepted.
func (r *accountsRepo) UpdateBalance(_ context.Context, id uint64, newBalance float64) error {
	acct, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("update balance of account %d: %w", id, domain.ErrAccountNotFound)
	}

	acct.Balance = newBalance
	return nil
}

// Count returns the number of stored accounts.
func (r *accountsRepo) Count(_ context.Context) int {
	return len(r.accounts)
}
