package entities

import "time"

// MarketSnapshot is one asset's market state at fetch time. Rows are
// append-only; same-day duplicates are filtered before insert, the table
// itself carries no uniqueness constraint.
type MarketSnapshot struct {
	ID                       uint      `json:"-" gorm:"primaryKey"`
	Symbol                   string    `json:"symbol"`
	Name                     string    `json:"name"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	MarketCapRank            int       `json:"market_cap_rank"`
	TotalVolume              float64   `json:"total_volume"`
	High24h                  float64   `json:"high_24h" gorm:"column:high_24h"`
	Low24h                   float64   `json:"low_24h" gorm:"column:low_24h"`
	PriceChange24h           float64   `json:"price_change_24h" gorm:"column:price_change_24h"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h" gorm:"column:price_change_percentage_24h"`
	Ath                      float64   `json:"ath"`
	Atl                      float64   `json:"atl"`
	CirculatingSupply        float64   `json:"circulating_supply"`
	TotalSupply              float64   `json:"total_supply"`
	MaxSupply                *float64  `json:"max_supply"`
	LastUpdated              time.Time `json:"last_updated"`
	LoadDate                 string    `json:"load_date" gorm:"index"`
}

func (MarketSnapshot) TableName() string {
	return "crypto_prices"
}
