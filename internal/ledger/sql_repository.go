package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/assets"
	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/messages"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// SQLRepository implements Repository over a database/sql handle.
type SQLRepository struct {
	db       dbx.Beginner
	driver   string
	resolver assets.Resolver
	msgs     messages.Sink
	logger   logging.Logger
}

// Option configures a SQLRepository.
type Option func(*SQLRepository)

// WithDriver sets the database/sql driver name used to pick the placeholder
// style. The default is "sqlite".
func WithDriver(name string) Option {
	return func(r *SQLRepository) { r.driver = name }
}

func WithLogger(l logging.Logger) Option {
	return func(r *SQLRepository) { r.logger = l }
}

// NewSQLRepository returns a repository bound to db. resolver turns stored
// asset identifiers into assets; msgs receives the user-facing errors and
// warnings for skipped rows and duplicates.
func NewSQLRepository(db dbx.Beginner, resolver assets.Resolver, msgs messages.Sink, opts ...Option) *SQLRepository {
	r := &SQLRepository{
		db:       db,
		driver:   "sqlite",
		resolver: resolver,
		msgs:     msgs,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SQLRepository) rebind(query string) string {
	return dbx.Rebind(r.driver, query)
}

// List returns the ledger actions matching f ordered by identifier.
func (r *SQLRepository) List(ctx context.Context, f Filter) ([]models.LedgerAction, error) {
	where, args := f.predicate().build()

	rows, err := r.selectActions(ctx, where, args)
	if err != nil {
		return nil, err
	}

	extras, err := r.selectGitcoinData(ctx, where, args)
	if err != nil {
		return nil, err
	}

	result := make([]models.LedgerAction, 0, len(rows))
	for _, row := range rows {
		action, err := row.toModel(ctx, r.resolver, extras)
		if err != nil {
			if !r.reportBadRow(ctx, row.identifier, err) {
				return nil, fmt.Errorf("failed to deserialize ledger action %d: %w", row.identifier, err)
			}
			continue
		}
		result = append(result, action)
	}
	return result, nil
}

// reportBadRow sends a row-level deserialization failure to the message sink.
// It returns false for errors that are not row-level and must abort List.
func (r *SQLRepository) reportBadRow(ctx context.Context, identifier int64, err error) bool {
	var de *models.DeserializationError
	var ua *assets.UnknownAssetError

	switch {
	case errors.As(err, &de):
		r.msgs.AddError(fmt.Sprintf(
			"Error deserializing Ledger Action from the DB. Skipping it. Error was: %s", de.Msg))
	case errors.As(err, &ua):
		r.msgs.AddError(fmt.Sprintf(
			"Error deserializing Ledger Action from the DB. Skipping it. Unknown asset %s found", ua.Identifier))
	default:
		return false
	}

	r.logger.Warn(ctx, "skipped ledger action", "identifier", identifier, "error", err)
	return true
}

func (r *SQLRepository) selectActions(ctx context.Context, where string, args []any) ([]actionRow, error) {
	query := r.rebind(`SELECT ` + actionColumns + ` FROM ledger_actions` + where + ` ORDER BY identifier`)
	r.logger.Debug(ctx, "select ledger actions", "query", query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select ledger actions: %w", err)
	}
	defer rows.Close()

	var result []actionRow
	for rows.Next() {
		var row actionRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, fmt.Errorf("failed to scan ledger action row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger action rows: %w", err)
	}
	return result, nil
}

// selectGitcoinData loads the extension rows of every action matched by where.
func (r *SQLRepository) selectGitcoinData(ctx context.Context, where string, args []any) (map[int64]gitcoinRow, error) {
	query := r.rebind(`SELECT ` + gitcoinColumns + ` FROM ledger_actions_gitcoin_data
		WHERE parent_id IN (SELECT identifier FROM ledger_actions` + where + `)`)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select gitcoin data: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]gitcoinRow)
	for rows.Next() {
		var row gitcoinRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, fmt.Errorf("failed to scan gitcoin data row: %w", err)
		}
		result[row.parentID] = row
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gitcoin data rows: %w", err)
	}
	return result, nil
}

// Add inserts a and its extension data in one transaction. On success the
// store-assigned identifier is written back onto a; on failure it is reset
// to 0. A nil action is a validation error. A uniqueness conflict
// rolls back both inserts and returns an error wrapping
// common.ErrAlreadyExists.
func (r *SQLRepository) Add(ctx context.Context, a *models.LedgerAction) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}

	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = r.insert(ctx, tx, a)
		return err
	})
	if err != nil {
		a.Identifier = 0
		if dbx.IsUniqueViolation(err) {
			return 0, fmt.Errorf("ledger action: %w: %v", common.ErrAlreadyExists, err)
		}
		return 0, err
	}

	a.Identifier = id
	return id, nil
}

func (r *SQLRepository) insert(ctx context.Context, tx dbx.DBTX, a *models.LedgerAction) (int64, error) {
	query := r.rebind(`INSERT INTO ledger_actions (
		timestamp, type, location, amount, asset, rate, rate_asset, link, notes
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING identifier`)

	var id int64
	if err := tx.QueryRowContext(ctx, query, a.SerializeForDB()...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert ledger action: %w", err)
	}

	if a.ExtraData != nil {
		query := r.rebind(`INSERT INTO ledger_actions_gitcoin_data (` + gitcoinColumns + `) VALUES (?, ?, ?, ?, ?)`)
		if _, err := tx.ExecContext(ctx, query, a.ExtraData.SerializeForDB(id)...); err != nil {
			return 0, fmt.Errorf("failed to insert gitcoin data: %w", err)
		}
	}

	return id, nil
}

// AddMany adds the actions one by one, each in its own transaction, because
// every extension row needs its parent's identifier first. An action that
// already exists is rolled back, reported as a warning and skipped; any other
// failure stops the loop. Actions added before a failure stay committed.
func (r *SQLRepository) AddMany(ctx context.Context, actions []*models.LedgerAction) error {
	for i, a := range actions {
		_, err := r.Add(ctx, a)
		if errors.Is(err, common.ErrAlreadyExists) {
			r.msgs.AddWarning("Did not add ledger action to DB due to it already existing")
			r.logger.Warn(ctx, "did not add ledger action to the DB due to it already existing",
				"action", a.String(), "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to add ledger action %d of %d: %w", i+1, len(actions), err)
		}
	}
	return nil
}

// Remove deletes the action with identifier together with its extension
// data. A missing identifier yields *NotFoundError.
func (r *SQLRepository) Remove(ctx context.Context, identifier int64) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			r.rebind(`DELETE FROM ledger_actions_gitcoin_data WHERE parent_id = ?`), identifier)
		if err != nil {
			return fmt.Errorf("failed to delete gitcoin data: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			r.rebind(`DELETE FROM ledger_actions WHERE identifier = ?`), identifier)
		if err != nil {
			return fmt.Errorf("failed to delete ledger action: %w", err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if ra < 1 {
			return &NotFoundError{Op: "delete", Identifier: identifier}
		}
		return nil
	})
}

// Edit updates every ledger_actions column of the row with a.Identifier.
// Extension data is not updated. A missing identifier yields *NotFoundError.
func (r *SQLRepository) Edit(ctx context.Context, a *models.LedgerAction) error {
	if err := a.Validate(); err != nil {
		return err
	}

	query := r.rebind(`UPDATE ledger_actions SET timestamp = ?, type = ?, location = ?, amount = ?,
		asset = ?, rate = ?, rate_asset = ?, link = ?, notes = ? WHERE identifier = ?`)

	args := append(a.SerializeForDB(), a.Identifier)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update ledger action: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return &NotFoundError{Op: "edit", Identifier: a.Identifier}
	}
	return nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_actions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ledger actions: %w", err)
	}
	return n, nil
}
