package application

import (
	"time"

	"crypto-tracker/models/entities"
	"crypto-tracker/models/registry"
	historyRepo "crypto-tracker/repositories/history"
	snapshotsRepo "crypto-tracker/repositories/snapshots"
	"crypto-tracker/services/coingecko"
	"crypto-tracker/services/dashboard"
	"crypto-tracker/services/health"
	"crypto-tracker/services/ingestion"
	"crypto-tracker/utils/databases"
	"crypto-tracker/utils/insights"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func New() (*Impl, error) {
	db, errDB := databases.New()
	if errDB != nil {
		return nil, errDB
	}
	if errRun := db.Run(); errRun != nil {
		return nil, errRun
	}

	errMigration := db.GetDB().AutoMigrate(&entities.MarketSnapshot{}, &entities.HistoricalPrice{})
	if errMigration != nil {
		return nil, errMigration
	}

	probes := insights.NewProbes(db.IsConnected)

	scheduler, errScheduler := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	snapRepo := snapshotsRepo.New(db)
	histoRepo := historyRepo.New(db)

	client := coingecko.New()
	dashboardService := dashboard.New(client, snapRepo, histoRepo)

	ingestionService, errIngestion := ingestion.New(scheduler, client, snapRepo, histoRepo, registry.Default())
	if errIngestion != nil {
		return nil, errIngestion
	}
	ingestionService.RegisterObserver(dashboardService)

	healthService, errHealth := health.New(scheduler, db.IsConnected)
	if errHealth != nil {
		return nil, errHealth
	}

	return &Impl{
		scheduler:        scheduler,
		probes:           probes,
		ingestionService: ingestionService,
		dashboardService: dashboardService,
		healthService:    healthService,
		db:               db,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}

	app.dashboardService.ListenAndServe()
	app.probes.ListenAndServe()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.dashboardService.Shutdown()
	app.probes.Shutdown()
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
