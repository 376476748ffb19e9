package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/ledger"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

func (a *App) List(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return a.fail(ctx, "list", err)
	}

	list, err := a.repo.List(ctx, f)
	if err != nil {
		return a.fail(ctx, "list", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tTYPE\tLOCATION\tAMOUNT\tASSET\tRATE\tLINK\tNOTES\tGITCOIN")
	for _, act := range list {
		rate := ""
		if act.Rate != nil {
			rate = act.Rate.String()
			if act.RateAsset != nil {
				rate += " " + act.RateAsset.String()
			}
		}
		gitcoin := ""
		if act.ExtraData != nil {
			gitcoin = fmt.Sprintf("grant %d tx %s", act.ExtraData.GrantID, act.ExtraData.TxID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			act.Identifier, formatTimestamp(act.Timestamp), act.Type, act.Location,
			act.Amount, act.Asset, rate, act.Link, act.Notes, gitcoin)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.printf("%d ledger actions\n", len(list))
	return nil
}

func (a *App) Add(ctx context.Context) error {
	act, err := a.inputAction(ctx, &models.LedgerAction{})
	if err != nil {
		return a.fail(ctx, "add", err)
	}

	id, err := a.repo.Add(ctx, act)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			a.printf("Ledger action already exists\n")
			return err
		}
		return a.fail(ctx, "add", err)
	}

	a.logger.Info(ctx, "ledger action added", "identifier", id)
	a.printf("Added ledger action %d\n", id)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseIdentifier(args)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}

	current, err := a.find(ctx, id)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}

	act, err := a.inputAction(ctx, current)
	if err != nil {
		return a.fail(ctx, "edit", err)
	}
	act.Identifier = id

	if err := a.repo.Edit(ctx, act); err != nil {
		return a.fail(ctx, "edit", err)
	}

	a.logger.Info(ctx, "ledger action edited", "identifier", id)
	a.printf("Edited ledger action %d\n", id)
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := parseIdentifier(args)
	if err != nil {
		return a.fail(ctx, "remove", err)
	}

	if err := a.repo.Remove(ctx, id); err != nil {
		return a.fail(ctx, "remove", err)
	}

	a.logger.Info(ctx, "ledger action removed", "identifier", id)
	a.printf("Removed ledger action %d\n", id)
	return nil
}

func (a *App) Assets(ctx context.Context) error {
	list, err := a.assets.List(ctx)
	if err != nil {
		return a.fail(ctx, "assets", err)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tSYMBOL\tNAME")
	for _, as := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", as.Identifier, as.Symbol, as.Name)
	}
	return tw.Flush()
}

// Messages prints and clears the warnings and errors collected so far.
func (a *App) Messages(ctx context.Context) error {
	errs := a.msgs.ConsumeErrors()
	warnings := a.msgs.ConsumeWarnings()
	if len(errs)+len(warnings) == 0 {
		a.printf("No messages\n")
		return nil
	}
	for _, m := range errs {
		a.printf("ERROR: %s\n", m)
	}
	for _, m := range warnings {
		a.printf("WARNING: %s\n", m)
	}
	return nil
}

// find looks an action up by identifier. Rows that fail to load are skipped
// by List, so they are reported as not found here.
func (a *App) find(ctx context.Context, id int64) (*models.LedgerAction, error) {
	list, err := a.repo.List(ctx, ledger.Filter{})
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Identifier == id {
			return &list[i], nil
		}
	}
	return nil, &ledger.NotFoundError{Op: "edit", Identifier: id}
}

// actionDefaults renders the fields of a stored action as prompt defaults.
// A new action has no defaults.
type actionDefaults struct {
	timestamp, typ, location, amount, asset, rate, rateAsset string
}

func defaultsFor(cur *models.LedgerAction) actionDefaults {
	if cur.Identifier == 0 {
		return actionDefaults{}
	}
	d := actionDefaults{
		timestamp: formatTimestamp(cur.Timestamp),
		typ:       cur.Type.String(),
		location:  cur.Location.String(),
		amount:    cur.Amount.String(),
		asset:     cur.Asset.Identifier,
	}
	if cur.Rate != nil {
		d.rate = cur.Rate.String()
	}
	if cur.RateAsset != nil {
		d.rateAsset = cur.RateAsset.Identifier
	}
	return d
}

// inputAction prompts for every editable field, offering the values of cur
// as defaults, and returns the new action. Extension data is carried over.
func (a *App) inputAction(ctx context.Context, cur *models.LedgerAction) (*models.LedgerAction, error) {
	act := &models.LedgerAction{ExtraData: cur.ExtraData}
	d := defaultsFor(cur)

	s, err := GetTextWithDefault(a.reader, "Timestamp (unix seconds, YYYY-MM-DD or RFC 3339)", d.timestamp, a.out)
	if err != nil {
		return nil, err
	}
	if act.Timestamp, err = parseTimestamp(s); err != nil {
		return nil, err
	}

	if s, err = GetTextWithDefault(a.reader, "Type (income, expense, loss, dividends income, donation received, airdrop, gift, grant)", d.typ, a.out); err != nil {
		return nil, err
	}
	if act.Type, err = models.ParseLedgerActionType(s); err != nil {
		return nil, err
	}

	if s, err = GetTextWithDefault(a.reader, "Location", d.location, a.out); err != nil {
		return nil, err
	}
	if act.Location, err = models.ParseLocation(s); err != nil {
		return nil, err
	}

	if s, err = GetTextWithDefault(a.reader, "Amount", d.amount, a.out); err != nil {
		return nil, err
	}
	if act.Amount, err = decimal.NewFromString(s); err != nil {
		return nil, fmt.Errorf("invalid amount %q", s)
	}

	if s, err = GetTextWithDefault(a.reader, "Asset", d.asset, a.out); err != nil {
		return nil, err
	}
	if act.Asset, err = a.assets.Resolve(ctx, s); err != nil {
		return nil, err
	}

	if s, err = GetTextWithDefault(a.reader, "Rate (optional, '-' clears)", d.rate, a.out); err != nil {
		return nil, err
	}
	if act.Rate, err = parseOptionalDecimal(s); err != nil {
		return nil, err
	}

	if s, err = GetTextWithDefault(a.reader, "Rate asset (optional, '-' clears)", d.rateAsset, a.out); err != nil {
		return nil, err
	}
	if s != "" {
		ra, err := a.assets.Resolve(ctx, s)
		if err != nil {
			return nil, err
		}
		act.RateAsset = &ra
	}

	if act.Link, err = GetTextWithDefault(a.reader, "Link (optional, '-' clears)", cur.Link, a.out); err != nil {
		return nil, err
	}
	if act.Notes, err = GetTextWithDefault(a.reader, "Notes (optional, '-' clears)", cur.Notes, a.out); err != nil {
		return nil, err
	}

	if err := act.Validate(); err != nil {
		return nil, err
	}
	return act, nil
}
