package entities

// HistoricalPrice is one asset's one-day observation. Symbol holds the
// CoinGecko asset id; the composite primary key rejects a repeated
// (symbol, date) pair across backfill runs.
type HistoricalPrice struct {
	Symbol      string  `json:"symbol" gorm:"primaryKey"`
	Date        string  `json:"date" gorm:"primaryKey"`
	Name        string  `json:"name,omitempty"`
	Price       float64 `json:"price"`
	MarketCap   float64 `json:"market_cap"`
	TotalVolume float64 `json:"total_volume"`
}

func (HistoricalPrice) TableName() string {
	return "crypto_history"
}
