package history

import (
	"crypto-tracker/models/entities"
	"crypto-tracker/utils/databases"
)

type Repository interface {
	SaveBatch(rows []entities.HistoricalPrice) (int64, error)
	FetchForSymbol(symbol string) ([]entities.HistoricalPrice, error)
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
