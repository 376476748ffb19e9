package models

import (
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/shopspring/decimal"
)

// Timestamp is a unix timestamp in seconds.
type Timestamp int64

// LedgerAction is a recorded financial event that is not a trade, such as an
// airdrop, gift or grant.
type LedgerAction struct {
	// Identifier is assigned by the store on insertion. Zero means not stored.
	Identifier int64

	Timestamp Timestamp
	Type      LedgerActionType
	Location  Location
	Amount    decimal.Decimal
	Asset     Asset

	// Rate prices one unit of Asset in RateAsset. Both are optional.
	Rate      *decimal.Decimal
	RateAsset *Asset

	// Link and Notes are free text; the empty string is stored as NULL.
	Link  string
	Notes string

	// ExtraData is nil for most actions.
	ExtraData *GitcoinEventData
}

// Validate checks the fields a caller supplies before the action is written.
func (a *LedgerAction) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: ledger action is nil", common.ErrorValidation)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: invalid ledger action type %d", common.ErrorValidation, a.Type)
	}
	if !a.Location.Valid() {
		return fmt.Errorf("%w: invalid location %d", common.ErrorValidation, a.Location)
	}
	if a.Asset.Identifier == "" {
		return fmt.Errorf("%w: asset is required", common.ErrorValidation)
	}
	if a.RateAsset != nil && a.RateAsset.Identifier == "" {
		return fmt.Errorf("%w: rate asset has no identifier", common.ErrorValidation)
	}
	if a.ExtraData != nil {
		if a.ExtraData.TxID == "" {
			return fmt.Errorf("%w: gitcoin tx id is required", common.ErrorValidation)
		}
		if !a.ExtraData.TxType.Valid() {
			return fmt.Errorf("%w: invalid gitcoin tx type %d", common.ErrorValidation, a.ExtraData.TxType)
		}
	}
	return nil
}

// SerializeForDB returns the entity-table column values in the order
// timestamp, type, location, amount, asset, rate, rate_asset, link, notes.
// Absent optional values are returned as nil so they are stored as NULL.
func (a *LedgerAction) SerializeForDB() []any {
	var rate, rateAsset, link, notes any
	if a.Rate != nil {
		rate = a.Rate.String()
	}
	if a.RateAsset != nil {
		rateAsset = a.RateAsset.Identifier
	}
	if a.Link != "" {
		link = a.Link
	}
	if a.Notes != "" {
		notes = a.Notes
	}
	return []any{
		int64(a.Timestamp),
		a.Type.SerializeForDB(),
		a.Location.SerializeForDB(),
		a.Amount.String(),
		a.Asset.Identifier,
		rate,
		rateAsset,
		link,
		notes,
	}
}

func (a LedgerAction) String() string {
	s := fmt.Sprintf("#%d %d %s %s %s %s", a.Identifier, a.Timestamp, a.Type, a.Location, a.Amount.String(), a.Asset)
	if a.Rate != nil && a.RateAsset != nil {
		s += fmt.Sprintf(" @ %s %s", a.Rate.String(), *a.RateAsset)
	}
	if a.Link != "" {
		s += " link=" + a.Link
	}
	if a.Notes != "" {
		s += " notes=" + a.Notes
	}
	if a.ExtraData != nil {
		s += fmt.Sprintf(" gitcoin(grant=%d tx=%s)", a.ExtraData.GrantID, a.ExtraData.TxID)
	}
	return s
}
