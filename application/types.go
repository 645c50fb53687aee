package application

import (
	"crypto-tracker/services/dashboard"
	"crypto-tracker/services/health"
	"crypto-tracker/services/ingestion"
	"crypto-tracker/utils/databases"
	"crypto-tracker/utils/insights"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler        gocron.Scheduler
	healthService    health.Service
	ingestionService ingestion.Service
	dashboardService dashboard.Service
	db               databases.SqlConnection
	probes           insights.Probes
}
