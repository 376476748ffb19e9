package models

import (
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

// DeserializationError reports a stored value that cannot be turned back into
// its model representation.
type DeserializationError struct {
	Msg string
}

func deserializationErrorf(format string, args ...any) *DeserializationError {
	return &DeserializationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *DeserializationError) Error() string { return e.Msg }

func (e *DeserializationError) Unwrap() error { return common.ErrDeserialization }
