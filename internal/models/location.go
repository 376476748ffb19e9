package models

// Location is the exchange, chain or venue where a ledger action happened.
type Location int

const (
	LocationExternal Location = iota + 1
	LocationKraken
	LocationPoloniex
	LocationBittrex
	LocationBinance
	LocationBitmex
	LocationCoinbase
	LocationTotal
	LocationBanks
	LocationBlockchain
	LocationCoinbasePro
	LocationGemini
	LocationEquities
	LocationRealEstate
	LocationCommodities
	LocationCryptocom
	LocationUniswap
	LocationBitstamp
	LocationBinanceUS
	LocationBitfinex
	LocationBitcoinde
	LocationIconomi
	LocationKucoin
	LocationBalancer
	LocationLoopring
	LocationFTX
	LocationNexo
	LocationBitpanda
	LocationIndependentReserve
	LocationGitcoin
)

var locationCodec = enumCodec{
	kind: "location",
	names: []string{
		"external",
		"kraken",
		"poloniex",
		"bittrex",
		"binance",
		"bitmex",
		"coinbase",
		"total",
		"banks",
		"blockchain",
		"coinbasepro",
		"gemini",
		"equities",
		"realestate",
		"commodities",
		"cryptocom",
		"uniswap",
		"bitstamp",
		"binanceus",
		"bitfinex",
		"bitcoinde",
		"iconomi",
		"kucoin",
		"balancer",
		"loopring",
		"ftx",
		"nexo",
		"bitpanda",
		"independentreserve",
		"gitcoin",
	},
}

func (l Location) String() string { return locationCodec.name(int(l)) }

func (l Location) Valid() bool { return locationCodec.valid(int(l)) }

func (l Location) SerializeForDB() string { return locationCodec.code(int(l)) }

func DeserializeLocationFromDB(s string) (Location, error) {
	v, err := locationCodec.fromCode(s)
	return Location(v), err
}

// ParseLocation accepts the lowercase name, e.g. "kraken".
func ParseLocation(s string) (Location, error) {
	v, err := locationCodec.fromName(s)
	return Location(v), err
}
