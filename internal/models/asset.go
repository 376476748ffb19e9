package models

// Asset is a resolved asset reference. Only Identifier is persisted on a
// ledger action; Name and Symbol come from the asset resolver.
type Asset struct {
	Identifier string
	Name       string
	Symbol     string
}

func (a Asset) String() string {
	if a.Symbol != "" {
		return a.Symbol
	}
	return a.Identifier
}
