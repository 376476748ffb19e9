// Package common defines sentinel errors shared by the ledgerkeeper layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Deserialization errors raised while reading stored rows.
	ErrDeserialization = errors.New("deserialization error")
	ErrUnknownAsset    = errors.New("unknown asset")

	// Validation errors for values supplied by callers.
	ErrorValidation = errors.New("validation error")
)
