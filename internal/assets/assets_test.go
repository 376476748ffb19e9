package assets

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "assets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE assets (
  identifier TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  symbol     TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLRepository_AddResolveList(t *testing.T) {
	r := NewSQLRepository(setupDB(t), "sqlite")
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, models.Asset{Identifier: "ETH", Name: "Ethereum", Symbol: "ETH"}))
	require.NoError(t, r.Add(ctx, models.Asset{Identifier: "BTC", Name: "Bitcoin", Symbol: "BTC"}))

	a, err := r.Resolve(ctx, "ETH")
	require.NoError(t, err)
	assert.Equal(t, models.Asset{Identifier: "ETH", Name: "Ethereum", Symbol: "ETH"}, a)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BTC", list[0].Identifier)
	assert.Equal(t, "ETH", list[1].Identifier)
}

func TestSQLRepository_ResolveUnknown(t *testing.T) {
	r := NewSQLRepository(setupDB(t), "sqlite")

	_, err := r.Resolve(context.Background(), "NOPE")
	require.Error(t, err)

	var ua *UnknownAssetError
	require.True(t, errors.As(err, &ua))
	assert.Equal(t, "NOPE", ua.Identifier)
	assert.True(t, errors.Is(err, common.ErrUnknownAsset))
}

func TestSQLRepository_AddDuplicateAndInvalid(t *testing.T) {
	r := NewSQLRepository(setupDB(t), "sqlite")
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, models.Asset{Identifier: "DAI", Name: "Dai", Symbol: "DAI"}))

	err := r.Add(ctx, models.Asset{Identifier: "DAI", Name: "Dai", Symbol: "DAI"})
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))

	err = r.Add(ctx, models.Asset{Name: "nameless"})
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestSQLRepository_ResolveUsesDollarPlaceholdersForPgx(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT identifier, name, symbol FROM assets WHERE identifier = $1`).
		WithArgs("ETH").
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "name", "symbol"}).AddRow("ETH", "Ethereum", "ETH"))

	a, err := NewSQLRepository(db, "pgx").Resolve(context.Background(), "ETH")
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", a.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_DBErrorsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLRepository(db, "sqlite")
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT identifier, name, symbol FROM assets WHERE`)).
		WillReturnError(errors.New("db is down"))
	_, err = r.Resolve(ctx, "ETH")
	require.ErrorContains(t, err, "failed to resolve asset ETH")
	assert.False(t, errors.Is(err, common.ErrUnknownAsset))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT identifier, name, symbol FROM assets ORDER BY`)).
		WillReturnError(errors.New("db is down"))
	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list assets")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO assets`)).
		WillReturnError(errors.New("db is down"))
	err = r.Add(ctx, models.Asset{Identifier: "X"})
	require.ErrorContains(t, err, "failed to insert asset")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver(models.Asset{Identifier: "USD", Name: "US Dollar", Symbol: "USD"})

	a, err := r.Resolve(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "US Dollar", a.Name)

	_, err = r.Resolve(context.Background(), "EUR")
	assert.True(t, errors.Is(err, common.ErrUnknownAsset))
	assert.EqualError(t, err, "unknown asset EUR")
}

func TestResolversImplementInterface(t *testing.T) {
	var _ Resolver = &SQLRepository{}
	var _ Resolver = &StaticResolver{}
}
