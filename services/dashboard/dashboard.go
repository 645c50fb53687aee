package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"crypto-tracker/models/constants"
	"crypto-tracker/models/entities"
	"crypto-tracker/pkg/observer"
	"crypto-tracker/repositories/history"
	"crypto-tracker/repositories/snapshots"
	"crypto-tracker/services/coingecko"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(client coingecko.Service,
	snapRepo snapshots.Repository,
	histoRepo history.Repository) *Impl {
	service := &Impl{
		client:     client,
		snapRepo:   snapRepo,
		histoRepo:  histoRepo,
		cache:      cache.New(viper.GetDuration(constants.OverviewCache), 1*time.Hour),
		vsCurrency: viper.GetString(constants.VsCurrency),
	}

	service.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetInt(constants.DashboardPort)),
		Handler:           service.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return service
}

// OnNotify drops the cached overview after an ingestion run so the next
// request reads fresh rows.
func (service *Impl) OnNotify(observer.Event) {
	service.cache.Delete(overviewCacheKey)
}

// Overview reads every persisted snapshot row ordered by last_updated
// descending, keeps the most recent row per symbol and derives the two
// display ratios.
func (service *Impl) Overview() (*Overview, error) {
	if x, found := service.cache.Get(overviewCacheKey); found {
		return x.(*Overview), nil
	}

	rows, err := service.snapRepo.ListOrdered()
	if err != nil {
		return nil, err
	}

	overview := buildOverview(rows)
	overview.Indicator = service.marketIndicator()
	service.cache.SetDefault(overviewCacheKey, overview)
	return overview, nil
}

func (service *Impl) History(id string) ([]entities.HistoricalPrice, error) {
	return service.histoRepo.FetchForSymbol(id)
}

func buildOverview(rows []entities.MarketSnapshot) *Overview {
	overview := &Overview{Rows: []Row{}}
	seen := map[string]struct{}{}
	for _, row := range rows {
		if _, found := seen[row.Symbol]; found {
			continue
		}
		seen[row.Symbol] = struct{}{}
		overview.Rows = append(overview.Rows, newRow(row))
		if row.LastUpdated.After(overview.LastUpdated) {
			overview.LastUpdated = row.LastUpdated
		}
	}
	return overview
}

func newRow(s entities.MarketSnapshot) Row {
	row := Row{MarketSnapshot: s}
	if s.TotalVolume != 0 {
		row.CapVolRatio = s.MarketCap / s.TotalVolume
	}
	if s.TotalSupply != 0 {
		row.SupplyRatio = s.CirculatingSupply / s.TotalSupply * 100
	}
	return row
}

// marketIndicator is decorative header data; a failed fetch leaves it out of
// the overview rather than failing the request.
func (service *Impl) marketIndicator() *MarketIndicator {
	if x, found := service.cache.Get(indicatorCacheKey); found {
		indicator := x.(MarketIndicator)
		return &indicator
	}

	global, err := service.client.FetchGlobal()
	if err != nil {
		log.Warn().Err(err).Msg("Cannot fetch global market data, overview served without indicator")
		return nil
	}

	indicator := MarketIndicator{
		TotalMarketCap:         global.TotalMarketCap[service.vsCurrency],
		TotalVolume24h:         global.TotalVolume[service.vsCurrency],
		BtcDominance:           global.MarketCapPercentage["btc"],
		ActiveCryptocurrencies: global.ActiveCryptocurrencies,
	}
	service.cache.SetDefault(indicatorCacheKey, indicator)
	return &indicator
}
