package ingestion

import (
	"fmt"
	"time"

	"crypto-tracker/models/constants"
	"crypto-tracker/models/entities"
	"crypto-tracker/models/registry"
	"crypto-tracker/pkg/observer"
	"crypto-tracker/repositories/history"
	"crypto-tracker/repositories/snapshots"
	"crypto-tracker/services/coingecko"
	"crypto-tracker/utils/dates"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler,
	client coingecko.Service,
	snapRepo snapshots.Repository,
	histoRepo history.Repository,
	coins registry.Lookup) (*Impl, error) {
	mode := Mode(viper.GetString(constants.SnapshotMode))
	if mode != ModeFull && mode != ModeIncremental {
		return nil, fmt.Errorf("unsupported snapshot mode: %s", mode)
	}

	service := &Impl{
		client:    client,
		snapRepo:  snapRepo,
		histoRepo: histoRepo,
		coins:     coins,
		mode:      mode,
		perPage:   viper.GetInt(constants.SnapshotPerPage),
		days:      viper.GetInt(constants.BackfillDays),
		pause:     delayBetweenCall,
		observers: map[observer.Observer]struct{}{},
	}

	if service.histoRepo.Count() == 0 {
		if err := service.RunBackfill(); err != nil {
			log.Error().Err(err).Msg("Initial backfill failed, continuing...")
		}
	}
	if viper.GetBool(constants.Production) {
		if err := service.RunSnapshot(service.mode); err != nil {
			log.Error().Err(err).Msg("Initial snapshot failed, continuing...")
		}
	}

	_, errSnapshotJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.SnapshotCronTab), true),
		gocron.NewTask(func() {
			if err := service.RunSnapshot(service.mode); err != nil {
				log.Error().Err(err).Msg("Snapshot ingestion failed")
			}
		}),
		gocron.WithName("Snapshot ingestion"),
	)
	if errSnapshotJob != nil {
		return nil, errSnapshotJob
	}

	_, errBackfillJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.BackfillCronTab), true),
		gocron.NewTask(func() {
			if err := service.RunBackfill(); err != nil {
				log.Error().Err(err).Msg("Historical backfill failed")
			}
		}),
		gocron.WithName("Historical backfill"),
	)
	if errBackfillJob != nil {
		return nil, errBackfillJob
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

// RunSnapshot fetches the current market state of every tracked asset in one
// call and appends it to crypto_prices. In incremental mode, symbols already
// recorded for today's load date are filtered out first; a failing lookup
// degrades to an empty already-loaded set so ingestion still proceeds.
func (service *Impl) RunSnapshot(mode Mode) error {
	loadDate := dates.TodayUTC()
	log.Info().Str(constants.LogMode, string(mode)).Str(constants.LogLoadDate, loadDate).Msg("Start snapshot ingestion")

	loaded := map[string]struct{}{}
	if mode == ModeIncremental {
		symbols, err := service.snapRepo.SymbolsForLoadDate(loadDate)
		if err != nil {
			log.Warn().Err(err).Str(constants.LogLoadDate, loadDate).
				Msg("Cannot list already loaded symbols, continuing without filter")
		} else {
			for _, symbol := range symbols {
				loaded[symbol] = struct{}{}
			}
		}
	}

	raw, err := service.client.FetchMarkets(service.coins.RequestedIDs(), service.perPage, 1)
	if err != nil {
		return err
	}

	rows := filterLoaded(shapeSnapshots(raw, loadDate), loaded)
	if len(rows) == 0 {
		log.Info().Str(constants.LogLoadDate, loadDate).Msg("No new snapshot rows, skipping insert")
		return nil
	}

	count, err := service.snapRepo.SaveBatch(rows)
	if err != nil {
		return err
	}

	log.Info().Int64(constants.LogRowCount, count).Str(constants.LogLoadDate, loadDate).Msg("End snapshot ingestion")
	service.notify(observer.Event{E: observer.SnapshotEvent})
	return nil
}

// RunBackfill walks the tracked assets in registry order, fetching each
// one's daily history. A failed fetch skips that asset only. All points are
// accumulated, deduplicated on (symbol, date) keeping the last occurrence,
// and persisted in a single append.
func (service *Impl) RunBackfill() error {
	log.Info().Msg("Start historical backfill")

	var batch []entities.HistoricalPrice
	skipped := 0
	for _, id := range service.coins.RequestedIDs() {
		chart, err := service.client.FetchMarketChart(id, service.days)
		if err != nil {
			log.Warn().Err(err).Str(constants.LogCoinID, id).Msg("Skipping asset after failed history fetch")
			skipped++
		} else {
			batch = append(batch, shapeHistory(id, service.coins, chart)...)
		}
		time.Sleep(service.pause)
	}

	batch = dedupeHistory(batch)
	if len(batch) == 0 {
		log.Info().Msg("No historical rows, skipping insert")
		return nil
	}

	count, err := service.histoRepo.SaveBatch(batch)
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert historical rows")
		return err
	}

	log.Info().Int64(constants.LogRowCount, count).Int("skippedAssets", skipped).Msg("End historical backfill")
	service.notify(observer.Event{E: observer.BackfillEvent})
	return nil
}
