// Package repository defines interfaces for data access.
package repository

import (
	"context"

	"github.com/gobank-labs/minibank/internal/domain"
)

// AccountsRepo defines the interface for account data operations.
//
// The repository owns every stored record. Reads hand out value snapshots;
// GetMut hands out the stored record itself, so at most one such handle
// should be live at a time.
type AccountsRepo interface {
	// Insert stores a new account and returns its final id. An account with
	// id 0 gets the next auto-assigned id; any other id is kept as-is and
	// checked for collision.
	Insert(ctx context.Context, acct domain.Account) (uint64, error)

	// Remove deletes an account by id and hands the stored record back to
	// the caller. Removed ids are never reused.
	Remove(ctx context.Context, id uint64) (domain.Account, error)

	// Get retrieves a snapshot of an account. The second return is false
	// when the id is not stored; absence is not an error.
	Get(ctx context.Context, id uint64) (domain.Account, bool)

	// GetMut retrieves the stored record itself for in-place mutation.
	GetMut(ctx context.Context, id uint64) (*domain.Account, bool)

	// ListAll retrieves snapshots of every stored account, in no
	// particular order.
	ListAll(ctx context.Context) []domain.Account

	// UpdateBalance overwrites the balance of a stored account.
	UpdateBalance(ctx context.Context, id uint64, newBalance float64) error

	// Count returns the number of stored accounts.
	Count(ctx context.Context) int
}
