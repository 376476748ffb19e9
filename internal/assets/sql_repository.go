package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/dbx"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// SQLRepository stores assets in the assets table and implements Resolver.
type SQLRepository struct {
	db     dbx.DBTX
	driver string
}

// NewSQLRepository binds the repository to db. driver is the database/sql
// driver name and selects the placeholder style.
func NewSQLRepository(db dbx.DBTX, driver string) *SQLRepository {
	return &SQLRepository{db: db, driver: driver}
}

func (r *SQLRepository) Resolve(ctx context.Context, identifier string) (models.Asset, error) {
	query := dbx.Rebind(r.driver, `SELECT identifier, name, symbol FROM assets WHERE identifier = ?`)

	var a models.Asset
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(&a.Identifier, &a.Name, &a.Symbol)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, &UnknownAssetError{Identifier: identifier}
	}
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to resolve asset %s: %w", identifier, err)
	}
	return a, nil
}

// Add inserts a new asset. Adding an existing identifier returns an error
// wrapping common.ErrAlreadyExists.
func (r *SQLRepository) Add(ctx context.Context, a models.Asset) error {
	if a.Identifier == "" {
		return fmt.Errorf("%w: asset identifier is required", common.ErrorValidation)
	}
	query := dbx.Rebind(r.driver, `INSERT INTO assets (identifier, name, symbol) VALUES (?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, a.Identifier, a.Name, a.Symbol); err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("asset %s: %w", a.Identifier, common.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert asset: %w", err)
	}
	return nil
}

// List returns all assets ordered by identifier.
func (r *SQLRepository) List(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT identifier, name, symbol FROM assets ORDER BY identifier`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var result []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.Identifier, &a.Name, &a.Symbol); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}
	return result, nil
}
