package coingecko

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	coingeckoBaseAPI  = "https://api.coingecko.com/api/v3"
	clientHTTPTimeout = 15 * time.Second
	snapshotOrder     = "market_cap_desc"
)

// ErrMissingSeries signals a market_chart response without the price series:
// the asset has no data, the call itself did not fail.
var ErrMissingSeries = errors.New("response is missing the price series")

// StatusError is returned for any non-success HTTP status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status: %d", e.StatusCode)
}

// MarketData is one raw record of the /coins/markets response.
type MarketData struct {
	ID                       string    `json:"id"`
	Symbol                   string    `json:"symbol"`
	Name                     string    `json:"name"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	MarketCapRank            int       `json:"market_cap_rank"`
	TotalVolume              float64   `json:"total_volume"`
	High24h                  float64   `json:"high_24h"`
	Low24h                   float64   `json:"low_24h"`
	PriceChange24h           float64   `json:"price_change_24h"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h"`
	Ath                      float64   `json:"ath"`
	Atl                      float64   `json:"atl"`
	CirculatingSupply        float64   `json:"circulating_supply"`
	TotalSupply              float64   `json:"total_supply"`
	MaxSupply                *float64  `json:"max_supply"`
	LastUpdated              time.Time `json:"last_updated"`
}

// MarketChart holds the three parallel daily series of one asset, each entry
// a [timestamp_ms, value] pair at the same index.
type MarketChart struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

type GlobalResponse struct {
	Data GlobalData `json:"data"`
}

type GlobalData struct {
	ActiveCryptocurrencies int                `json:"active_cryptocurrencies"`
	TotalMarketCap         map[string]float64 `json:"total_market_cap"`
	TotalVolume            map[string]float64 `json:"total_volume"`
	MarketCapPercentage    map[string]float64 `json:"market_cap_percentage"`
	UpdatedAt              int64              `json:"updated_at"`
}

type Service interface {
	FetchMarkets(ids []string, perPage int, page int) ([]MarketData, error)
	FetchMarketChart(id string, days int) (*MarketChart, error)
	FetchGlobal() (*GlobalData, error)
}

type Impl struct {
	baseURL    string
	vsCurrency string
	client     *http.Client
}
