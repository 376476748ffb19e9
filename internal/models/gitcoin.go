package models

// GitcoinTxType is the chain a Gitcoin grant contribution was made on.
type GitcoinTxType int

const (
	GitcoinTxEthereum GitcoinTxType = iota + 1
	GitcoinTxZkSync
)

var gitcoinTxTypeCodec = enumCodec{
	kind:  "gitcoin tx type",
	names: []string{"ethereum", "zksync"},
}

func (t GitcoinTxType) String() string { return gitcoinTxTypeCodec.name(int(t)) }

func (t GitcoinTxType) Valid() bool { return gitcoinTxTypeCodec.valid(int(t)) }

func (t GitcoinTxType) SerializeForDB() string { return gitcoinTxTypeCodec.code(int(t)) }

func DeserializeGitcoinTxTypeFromDB(s string) (GitcoinTxType, error) {
	v, err := gitcoinTxTypeCodec.fromCode(s)
	return GitcoinTxType(v), err
}

func ParseGitcoinTxType(s string) (GitcoinTxType, error) {
	v, err := gitcoinTxTypeCodec.fromName(s)
	return GitcoinTxType(v), err
}

// GitcoinEventData is the extension data attached to ledger actions imported
// from Gitcoin grants. It is owned one-to-one by its parent action.
type GitcoinEventData struct {
	TxID     string
	GrantID  int64
	ClrRound *int64
	TxType   GitcoinTxType
}

// SerializeForDB returns the extension-table column values in the order
// parent_id, tx_id, grant_id, clr_round, tx_type.
func (g *GitcoinEventData) SerializeForDB(parentID int64) []any {
	var round any
	if g.ClrRound != nil {
		round = *g.ClrRound
	}
	return []any{parentID, g.TxID, g.GrantID, round, g.TxType.SerializeForDB()}
}
