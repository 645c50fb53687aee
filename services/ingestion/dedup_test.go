package ingestion

import (
	"testing"

	"crypto-tracker/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLoaded(t *testing.T) {
	rows := []entities.MarketSnapshot{
		{Symbol: "btc"},
		{Symbol: "eth"},
		{Symbol: "sol"},
	}

	kept := filterLoaded(rows, map[string]struct{}{"btc": {}, "sol": {}})
	require.Len(t, kept, 1)
	assert.Equal(t, "eth", kept[0].Symbol)
}

func TestFilterLoadedEmptySet(t *testing.T) {
	rows := []entities.MarketSnapshot{{Symbol: "btc"}, {Symbol: "eth"}}
	assert.Equal(t, rows, filterLoaded(rows, map[string]struct{}{}))
}

func TestDedupeHistoryKeepsLastOccurrence(t *testing.T) {
	rows := []entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 100},
		{Symbol: "ethereum", Date: "2025-03-01", Price: 3000},
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 110},
	}

	deduped := dedupeHistory(rows)
	require.Len(t, deduped, 2)
	assert.Equal(t, "ethereum", deduped[0].Symbol)
	assert.Equal(t, "bitcoin", deduped[1].Symbol)
	assert.Equal(t, float64(110), deduped[1].Price, "the later occurrence must survive")
}

func TestDedupeHistoryKeepsDistinctDates(t *testing.T) {
	rows := []entities.HistoricalPrice{
		{Symbol: "bitcoin", Date: "2025-03-01", Price: 100},
		{Symbol: "bitcoin", Date: "2025-03-02", Price: 105},
	}

	assert.Equal(t, rows, dedupeHistory(rows))
}

func TestDedupeHistoryEmpty(t *testing.T) {
	assert.Empty(t, dedupeHistory(nil))
}
