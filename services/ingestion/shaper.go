package ingestion

import (
	"crypto-tracker/models/entities"
	"crypto-tracker/models/registry"
	"crypto-tracker/services/coingecko"
	"crypto-tracker/utils/dates"
)

// shapeSnapshots projects the raw records onto the persisted schema. The
// load date is computed once per run, not per record.
func shapeSnapshots(raw []coingecko.MarketData, loadDate string) []entities.MarketSnapshot {
	rows := make([]entities.MarketSnapshot, 0, len(raw))
	for _, d := range raw {
		rows = append(rows, entities.MarketSnapshot{
			Symbol:                   d.Symbol,
			Name:                     d.Name,
			CurrentPrice:             d.CurrentPrice,
			MarketCap:                d.MarketCap,
			MarketCapRank:            d.MarketCapRank,
			TotalVolume:              d.TotalVolume,
			High24h:                  d.High24h,
			Low24h:                   d.Low24h,
			PriceChange24h:           d.PriceChange24h,
			PriceChangePercentage24h: d.PriceChangePercentage24h,
			Ath:                      d.Ath,
			Atl:                      d.Atl,
			CirculatingSupply:        d.CirculatingSupply,
			TotalSupply:              d.TotalSupply,
			MaxSupply:                d.MaxSupply,
			LastUpdated:              d.LastUpdated,
			LoadDate:                 loadDate,
		})
	}
	return rows
}

// shapeHistory zips the three parallel series into one point per index. An
// asset id absent from the registry keeps an empty display name.
func shapeHistory(id string, coins registry.Lookup, chart *coingecko.MarketChart) []entities.HistoricalPrice {
	name, _ := coins.DisplayName(id)

	rows := make([]entities.HistoricalPrice, 0, len(chart.Prices))
	for i, point := range chart.Prices {
		if len(point) < 2 {
			continue
		}
		row := entities.HistoricalPrice{
			Symbol: id,
			Name:   name,
			Date:   dates.MillisToDate(int64(point[0])),
			Price:  point[1],
		}
		if i < len(chart.MarketCaps) && len(chart.MarketCaps[i]) > 1 {
			row.MarketCap = chart.MarketCaps[i][1]
		}
		if i < len(chart.TotalVolumes) && len(chart.TotalVolumes[i]) > 1 {
			row.TotalVolume = chart.TotalVolumes[i][1]
		}
		rows = append(rows, row)
	}
	return rows
}
