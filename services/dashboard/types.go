package dashboard

import (
	"net/http"
	"time"

	"crypto-tracker/models/entities"
	"crypto-tracker/repositories/history"
	"crypto-tracker/repositories/snapshots"
	"crypto-tracker/services/coingecko"

	"github.com/patrickmn/go-cache"
)

const (
	overviewCacheKey  = "overviewCacheKey"
	indicatorCacheKey = "indicatorCacheKey"
)

// Row is one asset of the overview: the latest persisted snapshot plus the
// two derived ratios.
type Row struct {
	entities.MarketSnapshot
	CapVolRatio float64 `json:"cap_vol_ratio"`
	SupplyRatio float64 `json:"supply_ratio"`
}

type MarketIndicator struct {
	TotalMarketCap         float64 `json:"totalMarketCap"`
	TotalVolume24h         float64 `json:"totalVolume24h"`
	BtcDominance           float64 `json:"btcDominance"`
	ActiveCryptocurrencies int     `json:"activeCryptocurrencies"`
}

type Overview struct {
	Rows        []Row            `json:"rows"`
	LastUpdated time.Time        `json:"lastUpdated"`
	Indicator   *MarketIndicator `json:"indicator,omitempty"`
}

type Service interface {
	Overview() (*Overview, error)
	History(id string) ([]entities.HistoricalPrice, error)
	ListenAndServe()
	Shutdown()
}

type Impl struct {
	client     coingecko.Service
	snapRepo   snapshots.Repository
	histoRepo  history.Repository
	cache      *cache.Cache
	server     *http.Server
	vsCurrency string
}
