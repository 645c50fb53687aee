package health

import (
	"crypto-tracker/models/constants"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, isConnected func() bool) (*Impl, error) {
	service := Impl{isConnected: isConnected}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.HealthCronTab), true),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) echo() {
	if service.isConnected() {
		log.Info().Msgf("Application is running")
	} else {
		log.Warn().Msgf("Application is running without database connectivity")
	}
}
