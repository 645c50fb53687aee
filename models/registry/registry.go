package registry

// Coin binds a CoinGecko asset id to its display name.
type Coin struct {
	ID   string
	Name string
}

// Lookup resolves tracked assets without tying the pipelines to a static
// table.
type Lookup interface {
	RequestedIDs() []string
	DisplayName(id string) (string, bool)
}

type Static struct {
	coins []Coin
	names map[string]string
}

func New(coins []Coin) *Static {
	names := make(map[string]string, len(coins))
	for _, coin := range coins {
		names[coin.ID] = coin.Name
	}
	return &Static{coins: coins, names: names}
}

// Default returns the tracked portfolio.
func Default() *Static {
	return New([]Coin{
		{ID: "bitcoin", Name: "Bitcoin"},
		{ID: "ethereum", Name: "Ethereum"},
		{ID: "solana", Name: "Solana"},
		{ID: "cardano", Name: "Cardano"},
		{ID: "dogecoin", Name: "Dogecoin"},
		{ID: "avalanche-2", Name: "Avalanche"},
		{ID: "tron", Name: "Tron"},
		{ID: "polkadot", Name: "Polkadot"},
		{ID: "litecoin", Name: "Litecoin"},
		{ID: "chainlink", Name: "Chainlink"},
		{ID: "polygon", Name: "Polygon"},
		{ID: "internet-computer", Name: "Internet Computer"},
		{ID: "stellar", Name: "Stellar"},
		{ID: "monero", Name: "Monero"},
		{ID: "vechain", Name: "VeChain"},
	})
}

func (r *Static) RequestedIDs() []string {
	ids := make([]string, 0, len(r.coins))
	for _, coin := range r.coins {
		ids = append(ids, coin.ID)
	}
	return ids
}

func (r *Static) DisplayName(id string) (string, bool) {
	name, found := r.names[id]
	return name, found
}
