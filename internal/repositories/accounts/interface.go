package accounts

//go:generate mockgen -destination=mock/mock_repository.go -package=accountsmock github.com/dmitrijs2005/partykeeper/internal/repositories/accounts Repository

import (
	"context"

	"github.com/dmitrijs2005/partykeeper/internal/models"
)

// Repository stores accounts.
type Repository interface {
	// Find returns the account whose name matches case-insensitively.
	// Returns common.ErrNotFound when there is none.
	Find(ctx context.Context, name string) (*models.Account, error)

	// Create stores a new account.
	// Returns common.ErrDuplicateAccount if the name is taken.
	Create(ctx context.Context, account models.Account) error

	// List returns all accounts in creation order.
	List(ctx context.Context) ([]models.Account, error)

	// Close releases underlying resources.
	Close() error
}
