// Package ledger provides the persistence layer for ledger actions and their
// optional Gitcoin extension data.
//
// # Overview
//
// Repository describes list, add, edit and remove operations on
// models.LedgerAction. SQLRepository implements it over a dbx.Beginner
// (usually *sql.DB) for both the sqlite and pgx drivers.
//
// # Tables
//
//   - ledger_actions               one row per action, identifier assigned by the store
//   - ledger_actions_gitcoin_data  optional extension row keyed by parent_id
//
// # Error policy
//
// List never fails because of a single bad row: rows with unknown enum codes,
// malformed decimals or unresolvable assets are skipped and reported to the
// messages.Sink. Edit and Remove report a missing identifier as *NotFoundError
// (errors.Is(err, common.ErrorNotFound)). Add reports uniqueness conflicts as
// common.ErrAlreadyExists, which AddMany downgrades to a warning.
//
// Typical Usage
//
//	repo := ledger.NewSQLRepository(db, resolver, aggregator, ledger.WithLogger(log))
//	id, _ := repo.Add(ctx, action)
//	list, _ := repo.List(ctx, ledger.Filter{}.WithLocation(models.LocationKraken))
//	_ = repo.Remove(ctx, id)
package ledger
