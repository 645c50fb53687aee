package history

import (
	"crypto-tracker/models/entities"
	"crypto-tracker/utils/databases"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

// SaveBatch appends rows, never upserts. A repeated (symbol, date) pair is
// rejected by the composite primary key and surfaces as the returned error.
func (repo *Impl) SaveBatch(rows []entities.HistoricalPrice) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := repo.db.GetDB().Create(&rows)
	return result.RowsAffected, result.Error
}

func (repo *Impl) FetchForSymbol(symbol string) ([]entities.HistoricalPrice, error) {
	var rows []entities.HistoricalPrice
	result := repo.db.GetDB().Where("symbol = ?", symbol).Order("date ASC").Find(&rows)

	return rows, result.Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.HistoricalPrice{}).Count(count)

	return *count
}
