package insights

import (
	"fmt"
	"net/http"
	"time"

	"crypto-tracker/models/constants"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Probes interface {
	ListenAndServe()
	Shutdown()
}

type probes struct {
	server      *http.Server
	isConnected func() bool
}

func NewProbes(isConnected func() bool) Probes {
	p := &probes{isConnected: isConnected}

	mux := http.NewServeMux()
	mux.HandleFunc("/probes/alive", p.alive)
	mux.HandleFunc("/probes/ready", p.ready)

	p.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetInt(constants.ProbePort)),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return p
}

func (p *probes) ListenAndServe() {
	go func() {
		log.Info().Msgf("Probes exposed on %s", p.server.Addr)
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Probe listener stopped")
		}
	}()
}

func (p *probes) Shutdown() {
	if err := p.server.Close(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown probe listener, continuing...")
	}
}

func (p *probes) alive(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (p *probes) ready(w http.ResponseWriter, _ *http.Request) {
	if !p.isConnected() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
