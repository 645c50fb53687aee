package ingestion

import (
	"time"

	"crypto-tracker/models/registry"
	"crypto-tracker/pkg/observer"
	"crypto-tracker/repositories/history"
	"crypto-tracker/repositories/snapshots"
	"crypto-tracker/services/coingecko"
)

const (
	// Blocking pause between successive history fetches, kept under the
	// CoinGecko public rate limit.
	delayBetweenCall = 1 * time.Second
)

// Mode selects the snapshot dedup policy: ModeFull appends every fetched
// row, ModeIncremental filters out symbols already loaded today.
type Mode string

const (
	ModeFull        Mode = "full"
	ModeIncremental Mode = "incremental"
)

type Service interface {
	RunSnapshot(mode Mode) error
	RunBackfill() error
	RegisterObserver(o observer.Observer)
}

type Impl struct {
	client    coingecko.Service
	snapRepo  snapshots.Repository
	histoRepo history.Repository
	coins     registry.Lookup
	mode      Mode
	perPage   int
	days      int
	pause     time.Duration
	observers map[observer.Observer]struct{}
}
