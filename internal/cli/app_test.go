package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ledgerkeeper/internal/ledger"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/messages"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/dmitrijs2005/ledgerkeeper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	repo *ledger.SQLRepository
	msgs *messages.Aggregator
	out  *bytes.Buffer
}

// newTestApp opens a fresh database and feeds the given lines to the app's
// prompts.
func newTestApp(t *testing.T, lines ...string) *testApp {
	t.Helper()
	ctx := context.Background()

	s, err := storage.Open(ctx, storage.DriverSQLite, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	msgs := messages.NewAggregator(nil)
	repo := s.Ledger(msgs, logging.Discard())
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	return &testApp{
		App:  NewApp(repo, s.Assets(), msgs, logging.Discard(), in, out),
		repo: repo,
		msgs: msgs,
		out:  out,
	}
}

func (ta *testApp) list(t *testing.T) []models.LedgerAction {
	t.Helper()
	list, err := ta.repo.List(context.Background(), ledger.Filter{})
	require.NoError(t, err)
	return list
}

func TestApp_AddThenList(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t,
		"2021-01-01", "airdrop", "blockchain", "10.5", "ETH", "", "", "https://etherscan.io/tx/1", "",
	)

	require.NoError(t, ta.Add(ctx))
	assert.Contains(t, ta.out.String(), "Added ledger action 1")

	list := ta.list(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.Timestamp(1609459200), list[0].Timestamp)
	assert.Equal(t, models.LedgerActionAirdrop, list[0].Type)
	assert.Equal(t, "10.5", list[0].Amount.String())
	assert.Equal(t, "Ethereum", list[0].Asset.Name)
	assert.Nil(t, list[0].Rate)
	assert.Empty(t, list[0].Notes)

	ta.out.Reset()
	require.NoError(t, ta.List(ctx, []string{"location=blockchain"}))
	assert.Contains(t, ta.out.String(), "airdrop")
	assert.Contains(t, ta.out.String(), "1 ledger actions")

	ta.out.Reset()
	require.NoError(t, ta.List(ctx, []string{"location=kraken"}))
	assert.Contains(t, ta.out.String(), "0 ledger actions")
}

func TestApp_AddRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	ta := newTestApp(t, "1", "theft")
	require.Error(t, ta.Add(ctx))
	assert.Contains(t, ta.out.String(), "Error:")

	ta = newTestApp(t, "1", "gift", "kraken", "1", "NOPE")
	require.Error(t, ta.Add(ctx))
	assert.Contains(t, ta.out.String(), "unknown asset NOPE")
	assert.Empty(t, ta.list(t))
}

func TestApp_EditKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t,
		"100", "income", "kraken", "3", "BTC", "", "", "", "first",
		"", "", "binance", "", "", "25000", "USD", "", "-",
	)
	require.NoError(t, ta.Add(ctx))

	require.NoError(t, ta.Edit(ctx, []string{"1"}))

	list := ta.list(t)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, models.Timestamp(100), got.Timestamp)
	assert.Equal(t, models.LedgerActionIncome, got.Type)
	assert.Equal(t, models.LocationBinance, got.Location)
	assert.Equal(t, "3", got.Amount.String())
	assert.Equal(t, "BTC", got.Asset.Identifier)
	require.NotNil(t, got.Rate)
	assert.Equal(t, "25000", got.Rate.String())
	require.NotNil(t, got.RateAsset)
	assert.Equal(t, "USD", got.RateAsset.Identifier)
	assert.Empty(t, got.Notes)
}

func TestApp_EditAndRemoveMissing(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t)

	require.Error(t, ta.Edit(ctx, []string{"7"}))
	assert.Contains(t, ta.out.String(), "not found")

	ta.out.Reset()
	require.Error(t, ta.Remove(ctx, []string{"7"}))
	assert.Contains(t, ta.out.String(), "tried to delete ledger action with identifier 7 but it was not found in the DB")
}

func TestApp_Remove(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t, "1", "gift", "kraken", "1", "DAI", "", "", "", "")
	require.NoError(t, ta.Add(ctx))

	require.NoError(t, ta.Remove(ctx, []string{"1"}))
	assert.Contains(t, ta.out.String(), "Removed ledger action 1")
	assert.Empty(t, ta.list(t))
}

func writeImportFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApp_ImportSkipsDuplicatesWithWarning(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t)

	path := writeImportFile(t, `[
		{"timestamp": "1", "action_type": "grant", "location": "gitcoin", "amount": "5", "asset": "DAI",
		 "gitcoin": {"tx_id": "0xabc", "grant_id": 12, "clr_round": 8, "tx_type": "zksync"}},
		{"timestamp": "2", "action_type": "grant", "location": "gitcoin", "amount": 7, "asset": "DAI",
		 "gitcoin": {"tx_id": "0xabc", "grant_id": 12, "tx_type": "ethereum"}},
		{"timestamp": "2021-01-01", "action_type": "donation received", "location": "external", "amount": "1",
		 "asset": "ETH", "rate": "730.5", "rate_asset": "USD", "notes": "thanks"}
	]`)

	require.NoError(t, ta.Import(ctx, []string{path}))
	assert.Contains(t, ta.out.String(), "Imported 2 of 3 ledger actions")

	list := ta.list(t)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].ExtraData)
	assert.Equal(t, "0xabc", list[0].ExtraData.TxID)
	assert.Equal(t, models.GitcoinTxZkSync, list[0].ExtraData.TxType)
	require.NotNil(t, list[0].ExtraData.ClrRound)
	assert.EqualValues(t, 8, *list[0].ExtraData.ClrRound)
	assert.Equal(t, "730.5", list[1].Rate.String())

	ta.out.Reset()
	require.NoError(t, ta.Messages(ctx))
	assert.Equal(t, "WARNING: Did not add ledger action to DB due to it already existing\n", ta.out.String())

	ta.out.Reset()
	require.NoError(t, ta.Messages(ctx))
	assert.Equal(t, "No messages\n", ta.out.String())
}

func TestApp_ImportValidatesBeforeWriting(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t)

	path := writeImportFile(t, `[
		{"timestamp": "1", "action_type": "gift", "location": "kraken", "amount": "1", "asset": "ETH"},
		{"timestamp": "2", "action_type": "gift", "location": "kraken", "amount": "1", "asset": "XYZ"}
	]`)

	require.Error(t, ta.Import(ctx, []string{path}))
	assert.Contains(t, ta.out.String(), "record 2")
	assert.Empty(t, ta.list(t))

	require.Error(t, ta.Import(ctx, nil))
	require.Error(t, ta.Import(ctx, []string{writeImportFile(t, `{"not": "an array"}`)}))
}

func TestApp_StatusShowsPendingMessages(t *testing.T) {
	ctx := context.Background()
	ta := newTestApp(t)

	_, err := ta.repo.Add(ctx, &models.LedgerAction{
		Timestamp: 1, Type: models.LedgerActionGift, Location: models.LocationKraken,
		Asset: models.Asset{Identifier: "ETH"},
	})
	require.NoError(t, err)
	assert.Equal(t, "", ta.getStatus())

	ta.msgs.AddError("boom")
	assert.Equal(t, "(1 errors, 0 warnings)", ta.getStatus())

	require.NoError(t, ta.Messages(ctx))
	assert.Contains(t, ta.out.String(), "ERROR: boom")
}

func TestApp_Assets(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.Assets(context.Background()))
	assert.Contains(t, ta.out.String(), "United States Dollar")
	assert.Contains(t, ta.out.String(), "GTC")
}
