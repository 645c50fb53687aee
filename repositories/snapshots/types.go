package snapshots

import (
	"crypto-tracker/models/entities"
	"crypto-tracker/utils/databases"
)

type Repository interface {
	SaveBatch(rows []entities.MarketSnapshot) (int64, error)
	SymbolsForLoadDate(day string) ([]string, error)
	ListOrdered() ([]entities.MarketSnapshot, error)
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
