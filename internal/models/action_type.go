package models

// LedgerActionType classifies a ledger action.
type LedgerActionType int

const (
	LedgerActionIncome LedgerActionType = iota + 1
	LedgerActionExpense
	LedgerActionLoss
	LedgerActionDividendsIncome
	LedgerActionDonationReceived
	LedgerActionAirdrop
	LedgerActionGift
	LedgerActionGrant
)

var actionTypeCodec = enumCodec{
	kind: "ledger action type",
	names: []string{
		"income",
		"expense",
		"loss",
		"dividends income",
		"donation received",
		"airdrop",
		"gift",
		"grant",
	},
}

func (t LedgerActionType) String() string { return actionTypeCodec.name(int(t)) }

// Valid reports whether t is one of the declared types.
func (t LedgerActionType) Valid() bool { return actionTypeCodec.valid(int(t)) }

func (t LedgerActionType) SerializeForDB() string { return actionTypeCodec.code(int(t)) }

// IsProfitable reports whether the action increases holdings.
func (t LedgerActionType) IsProfitable() bool {
	switch t {
	case LedgerActionExpense, LedgerActionLoss:
		return false
	}
	return t.Valid()
}

func DeserializeLedgerActionTypeFromDB(s string) (LedgerActionType, error) {
	v, err := actionTypeCodec.fromCode(s)
	return LedgerActionType(v), err
}

// ParseLedgerActionType accepts the lowercase name, e.g. "airdrop".
func ParseLedgerActionType(s string) (LedgerActionType, error) {
	v, err := actionTypeCodec.fromName(s)
	return LedgerActionType(v), err
}
