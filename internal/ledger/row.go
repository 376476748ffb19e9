package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/assets"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

const actionColumns = `identifier, timestamp, type, location, amount, asset, rate, rate_asset, link, notes`

const gitcoinColumns = `parent_id, tx_id, grant_id, clr_round, tx_type`

// actionRow holds one ledger_actions row exactly as stored.
type actionRow struct {
	identifier int64
	timestamp  int64
	typ        string
	location   string
	amount     string
	asset      string
	rate       sql.NullString
	rateAsset  sql.NullString
	link       sql.NullString
	notes      sql.NullString
}

func (r *actionRow) scanDest() []any {
	return []any{
		&r.identifier, &r.timestamp, &r.typ, &r.location, &r.amount,
		&r.asset, &r.rate, &r.rateAsset, &r.link, &r.notes,
	}
}

// gitcoinRow holds one ledger_actions_gitcoin_data row exactly as stored.
type gitcoinRow struct {
	parentID int64
	txID     string
	grantID  int64
	clrRound sql.NullInt64
	txType   string
}

func (r *gitcoinRow) scanDest() []any {
	return []any{&r.parentID, &r.txID, &r.grantID, &r.clrRound, &r.txType}
}

func (r gitcoinRow) toModel() (*models.GitcoinEventData, error) {
	txType, err := models.DeserializeGitcoinTxTypeFromDB(r.txType)
	if err != nil {
		return nil, err
	}
	g := &models.GitcoinEventData{TxID: r.txID, GrantID: r.grantID, TxType: txType}
	if r.clrRound.Valid {
		round := r.clrRound.Int64
		g.ClrRound = &round
	}
	return g, nil
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &models.DeserializationError{Msg: fmt.Sprintf("failed to deserialize %s %q", field, s)}
	}
	return d, nil
}

// toModel converts the stored row into a LedgerAction, resolving asset
// references and attaching extension data from extras. It returns
// *models.DeserializationError or *assets.UnknownAssetError for bad rows.
func (r actionRow) toModel(ctx context.Context, resolver assets.Resolver, extras map[int64]gitcoinRow) (models.LedgerAction, error) {
	typ, err := models.DeserializeLedgerActionTypeFromDB(r.typ)
	if err != nil {
		return models.LedgerAction{}, err
	}
	location, err := models.DeserializeLocationFromDB(r.location)
	if err != nil {
		return models.LedgerAction{}, err
	}
	amount, err := parseDecimal("amount", r.amount)
	if err != nil {
		return models.LedgerAction{}, err
	}
	asset, err := resolver.Resolve(ctx, r.asset)
	if err != nil {
		return models.LedgerAction{}, err
	}

	a := models.LedgerAction{
		Identifier: r.identifier,
		Timestamp:  models.Timestamp(r.timestamp),
		Type:       typ,
		Location:   location,
		Amount:     amount,
		Asset:      asset,
		Link:       r.link.String,
		Notes:      r.notes.String,
	}

	if r.rate.Valid {
		rate, err := parseDecimal("rate", r.rate.String)
		if err != nil {
			return models.LedgerAction{}, err
		}
		a.Rate = &rate
	}
	if r.rateAsset.Valid {
		rateAsset, err := resolver.Resolve(ctx, r.rateAsset.String)
		if err != nil {
			return models.LedgerAction{}, err
		}
		a.RateAsset = &rateAsset
	}

	if extra, ok := extras[r.identifier]; ok {
		a.ExtraData, err = extra.toModel()
		if err != nil {
			return models.LedgerAction{}, err
		}
	}

	return a, nil
}
