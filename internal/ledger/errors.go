package ledger

import (
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

// NotFoundError is returned by Edit and Remove when no action has the
// requested identifier. Its message is meant to be shown to the user.
type NotFoundError struct {
	Op         string
	Identifier int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tried to %s ledger action with identifier %d but it was not found in the DB", e.Op, e.Identifier)
}

func (e *NotFoundError) Unwrap() error { return common.ErrorNotFound }
