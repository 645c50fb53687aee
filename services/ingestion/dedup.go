package ingestion

import "crypto-tracker/models/entities"

// filterLoaded drops rows whose symbol is already recorded for the run's
// load date.
func filterLoaded(rows []entities.MarketSnapshot, loaded map[string]struct{}) []entities.MarketSnapshot {
	if len(loaded) == 0 {
		return rows
	}

	kept := make([]entities.MarketSnapshot, 0, len(rows))
	for _, row := range rows {
		if _, found := loaded[row.Symbol]; !found {
			kept = append(kept, row)
		}
	}
	return kept
}

// dedupeHistory removes rows sharing a (symbol, date) pair within the batch,
// keeping the last occurrence. Duplicates across runs are left to the
// table's composite primary key.
func dedupeHistory(rows []entities.HistoricalPrice) []entities.HistoricalPrice {
	seen := make(map[string]struct{}, len(rows))
	kept := make([]entities.HistoricalPrice, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		key := rows[i].Symbol + "|" + rows[i].Date
		if _, found := seen[key]; found {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rows[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}
