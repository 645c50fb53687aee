package constants

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	InternalName = "crypto-tracker"
	ExternalName = "Crypto Tracker"
	Version      = "1.0.0"

	ConfigFileName = ".env"

	// Database driver, one of [sqlite, postgres].
	DbDriver = "DB_DRIVER"

	// PostgreSQL credentials; all four are required when DB_DRIVER=postgres.
	DbUser     = "DB_USER"
	DbPassword = "DB_PASSWORD"
	DbHost     = "DB_HOST"
	DbName     = "DB_NAME"
	DbPort     = "DB_PORT"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Probe port.
	ProbePort = "PROBE_PORT"

	// Dashboard HTTP port.
	DashboardPort = "DASHBOARD_PORT"

	// Boolean; when true the snapshot pipeline also runs once at startup.
	Production = "PRODUCTION"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Cron tab to snapshot ingestion.
	SnapshotCronTab = "SNAPSHOT_CRON_TAB"

	// Cron tab to historical backfill.
	BackfillCronTab = "BACKFILL_CRON_TAB"

	// Snapshot ingestion mode, one of [full, incremental].
	SnapshotMode = "SNAPSHOT_MODE"

	// Fiat unit used for every CoinGecko call.
	VsCurrency = "VS_CURRENCY"

	// Lookback window of the historical backfill, in days.
	BackfillDays = "BACKFILL_DAYS"

	// Page size of the snapshot call when no ids are requested.
	SnapshotPerPage = "SNAPSHOT_PER_PAGE"

	// Dashboard overview cache. Duration type.
	OverviewCache = "OVERVIEW_CACHE"

	defaultDbDriver        = "sqlite"
	defaultDbPort          = 5432
	defaultSqliteURL       = "crypto-tracker.db"
	defaultProbePort       = 9090
	defaultDashboardPort   = 8080
	defaultHealthCronTab   = "* * * * *"
	defaultSnapshotCronTab = "0 * * * *"
	defaultBackfillCronTab = "0 3 * * *"
	defaultSnapshotMode    = "incremental"
	defaultVsCurrency      = "usd"
	defaultBackfillDays    = 365
	defaultSnapshotPerPage = 100
	defaultOverviewCache   = 5 * time.Minute
	defaultLogLevel        = zerolog.InfoLevel
	defaultProduction      = false
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		DbDriver:        defaultDbDriver,
		DbPort:          defaultDbPort,
		SqliteURL:       defaultSqliteURL,
		ProbePort:       defaultProbePort,
		DashboardPort:   defaultDashboardPort,
		LogLevel:        defaultLogLevel.String(),
		Production:      defaultProduction,
		HealthCronTab:   defaultHealthCronTab,
		SnapshotCronTab: defaultSnapshotCronTab,
		BackfillCronTab: defaultBackfillCronTab,
		SnapshotMode:    defaultSnapshotMode,
		VsCurrency:      defaultVsCurrency,
		BackfillDays:    defaultBackfillDays,
		SnapshotPerPage: defaultSnapshotPerPage,
		OverviewCache:   defaultOverviewCache,
	}
}
