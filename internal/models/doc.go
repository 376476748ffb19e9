// Package models defines the ledger action record, its enums, the assets it
// references and the optional per-platform extension data.
//
// Enums are persisted as single-character codes. SerializeForDB and the
// matching Deserialize...FromDB functions convert between the in-memory value
// and the stored code; unknown codes yield a *DeserializationError.
package models
