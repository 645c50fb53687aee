package ingestion

import (
	"testing"
	"time"

	"crypto-tracker/models/entities"
	"crypto-tracker/models/registry"
	"crypto-tracker/services/coingecko"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeSnapshots(t *testing.T) {
	maxSupply := float64(21000000)
	lastUpdated := time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)
	raw := []coingecko.MarketData{{
		ID:                       "bitcoin",
		Symbol:                   "btc",
		Name:                     "Bitcoin",
		CurrentPrice:             65000.5,
		MarketCap:                1.28e12,
		MarketCapRank:            1,
		TotalVolume:              3.5e10,
		High24h:                  66000,
		Low24h:                   64000,
		PriceChange24h:           -500.25,
		PriceChangePercentage24h: -0.76,
		Ath:                      73750,
		Atl:                      67.81,
		CirculatingSupply:        19700000,
		TotalSupply:              21000000,
		MaxSupply:                &maxSupply,
		LastUpdated:              lastUpdated,
	}}

	rows := shapeSnapshots(raw, "2025-03-01")
	require.Len(t, rows, 1)

	maxSupplyCopy := maxSupply
	assert.Equal(t, entities.MarketSnapshot{
		Symbol:                   "btc",
		Name:                     "Bitcoin",
		CurrentPrice:             65000.5,
		MarketCap:                1.28e12,
		MarketCapRank:            1,
		TotalVolume:              3.5e10,
		High24h:                  66000,
		Low24h:                   64000,
		PriceChange24h:           -500.25,
		PriceChangePercentage24h: -0.76,
		Ath:                      73750,
		Atl:                      67.81,
		CirculatingSupply:        19700000,
		TotalSupply:              21000000,
		MaxSupply:                &maxSupplyCopy,
		LastUpdated:              lastUpdated,
		LoadDate:                 "2025-03-01",
	}, rows[0])
}

func TestShapeSnapshotsLastUpdatedRoundTrip(t *testing.T) {
	lastUpdated := time.Date(2025, 3, 1, 12, 30, 45, 123000000, time.UTC)
	rows := shapeSnapshots([]coingecko.MarketData{{Symbol: "btc", LastUpdated: lastUpdated}}, "2025-03-01")
	require.Len(t, rows, 1)

	formatted := rows[0].LastUpdated.Format(time.RFC3339Nano)
	reparsed, err := time.Parse(time.RFC3339Nano, formatted)
	require.NoError(t, err)
	assert.True(t, reparsed.Equal(lastUpdated))
}

func TestShapeHistory(t *testing.T) {
	coins := registry.New([]registry.Coin{{ID: "bitcoin", Name: "Bitcoin"}})
	chart := &coingecko.MarketChart{
		Prices:       [][]float64{{1000, 100}, {87400000, 110}},
		MarketCaps:   [][]float64{{1000, 1e9}, {87400000, 1.1e9}},
		TotalVolumes: [][]float64{{1000, 5e7}, {87400000, 6e7}},
	}

	rows := shapeHistory("bitcoin", coins, chart)
	require.Len(t, rows, 2)
	assert.Equal(t, entities.HistoricalPrice{
		Symbol: "bitcoin", Name: "Bitcoin", Date: "1970-01-01",
		Price: 100, MarketCap: 1e9, TotalVolume: 5e7,
	}, rows[0])
	assert.Equal(t, entities.HistoricalPrice{
		Symbol: "bitcoin", Name: "Bitcoin", Date: "1970-01-02",
		Price: 110, MarketCap: 1.1e9, TotalVolume: 6e7,
	}, rows[1])
}

func TestShapeHistoryProducesOnePointPerIndex(t *testing.T) {
	coins := registry.New(nil)
	chart := &coingecko.MarketChart{
		Prices:       [][]float64{{0, 1}, {86400000, 2}, {172800000, 3}},
		MarketCaps:   [][]float64{{0, 10}, {86400000, 20}, {172800000, 30}},
		TotalVolumes: [][]float64{{0, 100}, {86400000, 200}, {172800000, 300}},
	}

	rows := shapeHistory("polygon", coins, chart)
	require.Len(t, rows, len(chart.Prices))
	for i, row := range rows {
		assert.Equal(t, chart.Prices[i][1], row.Price)
		assert.Equal(t, chart.MarketCaps[i][1], row.MarketCap)
		assert.Equal(t, chart.TotalVolumes[i][1], row.TotalVolume)
	}
}

func TestShapeHistoryUnknownAssetKeepsEmptyName(t *testing.T) {
	coins := registry.New([]registry.Coin{{ID: "bitcoin", Name: "Bitcoin"}})
	chart := &coingecko.MarketChart{Prices: [][]float64{{1000, 1}}}

	rows := shapeHistory("some-new-coin", coins, chart)
	require.Len(t, rows, 1)
	assert.Equal(t, "some-new-coin", rows[0].Symbol)
	assert.Empty(t, rows[0].Name)
}

func TestShapeHistoryRaggedSeries(t *testing.T) {
	coins := registry.New(nil)
	chart := &coingecko.MarketChart{
		Prices:     [][]float64{{1000, 1}, {87400000, 2}},
		MarketCaps: [][]float64{{1000, 10}},
	}

	rows := shapeHistory("bitcoin", coins, chart)
	require.Len(t, rows, 2)
	assert.Equal(t, float64(10), rows[0].MarketCap)
	assert.Zero(t, rows[1].MarketCap)
	assert.Zero(t, rows[0].TotalVolume)
}
