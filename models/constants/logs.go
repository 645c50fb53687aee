package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogCoinID        = "coinID"
	LogSymbol        = "symbol"
	LogLoadDate      = "loadDate"
	LogMode          = "mode"
	LogRowCount      = "rowCount"
	LogTable         = "table"
	LogStatusCode    = "statusCode"
	LogLevelFallback = zerolog.InfoLevel
)
