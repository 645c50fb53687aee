package snapshots

import (
	"crypto-tracker/models/entities"
	"crypto-tracker/utils/databases"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

// SaveBatch appends rows as-is; an empty batch is a no-op without a database
// round trip.
func (repo *Impl) SaveBatch(rows []entities.MarketSnapshot) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := repo.db.GetDB().Create(&rows)
	return result.RowsAffected, result.Error
}

func (repo *Impl) SymbolsForLoadDate(day string) ([]string, error) {
	var symbols []string
	result := repo.db.GetDB().Model(&entities.MarketSnapshot{}).
		Where("load_date = ?", day).
		Distinct().
		Pluck("symbol", &symbols)

	return symbols, result.Error
}

func (repo *Impl) ListOrdered() ([]entities.MarketSnapshot, error) {
	var rows []entities.MarketSnapshot
	result := repo.db.GetDB().Order("last_updated DESC").Find(&rows)

	return rows, result.Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.MarketSnapshot{}).Count(count)

	return *count
}
