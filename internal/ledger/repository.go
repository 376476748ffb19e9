package ledger

import (
	"context"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// Repository describes CRUD and query operations for ledger actions.
type Repository interface {
	// List returns the actions matching every set field of f, in insertion
	// order. Rows that fail to deserialize are skipped and reported.
	List(ctx context.Context, f Filter) ([]models.LedgerAction, error)

	// Add stores a and its extension data atomically, writes the assigned
	// identifier back onto a and returns it.
	Add(ctx context.Context, a *models.LedgerAction) (int64, error)

	// AddMany adds each action in its own transaction, skipping duplicates
	// with a warning.
	AddMany(ctx context.Context, actions []*models.LedgerAction) error

	// Edit overwrites the stored action with the same identifier. Extension
	// data is left as it is.
	Edit(ctx context.Context, a *models.LedgerAction) error

	// Remove deletes the action and its extension data.
	Remove(ctx context.Context, identifier int64) error

	// Count returns the number of stored actions.
	Count(ctx context.Context) (int64, error)
}
