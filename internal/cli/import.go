package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

// importRecord is the JSON shape accepted by the import command. Timestamps
// use the same formats as the list filters; amounts and rates may be JSON
// strings or numbers.
type importRecord struct {
	Timestamp string           `json:"timestamp"`
	Type      string           `json:"action_type"`
	Location  string           `json:"location"`
	Amount    decimal.Decimal  `json:"amount"`
	Asset     string           `json:"asset"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
	RateAsset string           `json:"rate_asset,omitempty"`
	Link      string           `json:"link,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	Gitcoin   *importGitcoin   `json:"gitcoin,omitempty"`
}

type importGitcoin struct {
	TxID     string `json:"tx_id"`
	GrantID  int64  `json:"grant_id"`
	ClrRound *int64 `json:"clr_round,omitempty"`
	TxType   string `json:"tx_type"`
}

func (r importRecord) toModel(ctx context.Context, as AssetStore) (*models.LedgerAction, error) {
	var (
		act = &models.LedgerAction{Amount: r.Amount, Rate: r.Rate, Link: r.Link, Notes: r.Notes}
		err error
	)
	if act.Timestamp, err = parseTimestamp(r.Timestamp); err != nil {
		return nil, err
	}
	if act.Type, err = models.ParseLedgerActionType(r.Type); err != nil {
		return nil, err
	}
	if act.Location, err = models.ParseLocation(r.Location); err != nil {
		return nil, err
	}
	if act.Asset, err = as.Resolve(ctx, r.Asset); err != nil {
		return nil, err
	}
	if r.RateAsset != "" {
		ra, err := as.Resolve(ctx, r.RateAsset)
		if err != nil {
			return nil, err
		}
		act.RateAsset = &ra
	}
	if g := r.Gitcoin; g != nil {
		txType, err := models.ParseGitcoinTxType(g.TxType)
		if err != nil {
			return nil, err
		}
		act.ExtraData = &models.GitcoinEventData{TxID: g.TxID, GrantID: g.GrantID, ClrRound: g.ClrRound, TxType: txType}
	}
	if err := act.Validate(); err != nil {
		return nil, err
	}
	return act, nil
}

// Import reads a JSON array of ledger actions from a file and adds them with
// AddMany. The file is validated completely before anything is written.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.fail(ctx, "import", fmt.Errorf("usage: import <file.json>"))
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return a.fail(ctx, "import", err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return a.fail(ctx, "import", fmt.Errorf("parse %s: %w", args[0], err))
	}

	actions := make([]*models.LedgerAction, 0, len(records))
	for i, r := range records {
		act, err := r.toModel(ctx, a.assets)
		if err != nil {
			return a.fail(ctx, "import", fmt.Errorf("record %d: %w", i+1, err))
		}
		actions = append(actions, act)
	}

	before, err := a.repo.Count(ctx)
	if err != nil {
		return a.fail(ctx, "import", err)
	}
	if err := a.repo.AddMany(ctx, actions); err != nil {
		return a.fail(ctx, "import", err)
	}
	after, err := a.repo.Count(ctx)
	if err != nil {
		return a.fail(ctx, "import", err)
	}

	a.logger.Info(ctx, "ledger actions imported", "file", args[0], "read", len(actions), "added", after-before)
	a.printf("Imported %d of %d ledger actions\n", after-before, len(actions))
	return nil
}
