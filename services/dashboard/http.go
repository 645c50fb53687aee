package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (service *Impl) router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", service.handleIndex)
	r.Get("/api/overview", service.handleOverview)
	r.Get("/api/history/{id}", service.handleHistory)
	return r
}

func (service *Impl) ListenAndServe() {
	go func() {
		log.Info().Msgf("Dashboard exposed on %s", service.server.Addr)
		if err := service.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Dashboard listener stopped")
		}
	}()
}

func (service *Impl) Shutdown() {
	if err := service.server.Close(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown dashboard listener, continuing...")
	}
}

func (service *Impl) handleOverview(w http.ResponseWriter, _ *http.Request) {
	overview, err := service.Overview()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build overview")
		http.Error(w, "failed to build overview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if errEncode := json.NewEncoder(w).Encode(overview); errEncode != nil {
		log.Error().Err(errEncode).Msg("Failed to encode overview")
	}
}

func (service *Impl) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rows, err := service.History(id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch history")
		http.Error(w, "failed to fetch history", http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "no history for asset", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if errEncode := json.NewEncoder(w).Encode(rows); errEncode != nil {
		log.Error().Err(errEncode).Msg("Failed to encode history")
	}
}

func (service *Impl) handleIndex(w http.ResponseWriter, _ *http.Request) {
	overview, err := service.Overview()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build overview")
		http.Error(w, "failed to build overview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if errRender := indexTemplate.Execute(w, overview); errRender != nil {
		log.Error().Err(errRender).Msg("Failed to render overview")
	}
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"dollar": func(v float64) string {
		return "$" + humanize.CommafWithDigits(v, 2)
	},
	"bigDollar": func(v float64) string {
		return "$" + humanize.CommafWithDigits(v, 0)
	},
	"percent": func(v float64) string {
		return humanize.CommafWithDigits(v, 2) + "%"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Crypto Tracker</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: right; }
th { background: #f4f4f4; }
td:first-child, td:nth-child(2), th:first-child, th:nth-child(2) { text-align: left; }
.negative { color: #c0392b; }
.positive { color: #27ae60; }
</style>
</head>
<body>
<h1>Crypto Tracker</h1>
{{- if .Indicator}}
<p>
Total market cap: <strong>{{bigDollar .Indicator.TotalMarketCap}}</strong> |
24h volume: <strong>{{bigDollar .Indicator.TotalVolume24h}}</strong> |
BTC dominance: <strong>{{percent .Indicator.BtcDominance}}</strong> |
Active cryptocurrencies: <strong>{{.Indicator.ActiveCryptocurrencies}}</strong>
</p>
{{- end}}
<p>Last updated: {{.LastUpdated.Format "2006-01-02 15:04:05 MST"}}</p>
<table>
<tr>
<th>Symbol</th><th>Name</th><th>Price</th><th>Market cap</th><th>Rank</th>
<th>Volume 24h</th><th>Change 24h</th><th>Cap/Vol</th><th>Supply %</th>
</tr>
{{- range .Rows}}
<tr>
<td>{{.Symbol}}</td>
<td>{{.Name}}</td>
<td>{{dollar .CurrentPrice}}</td>
<td>{{bigDollar .MarketCap}}</td>
<td>{{.MarketCapRank}}</td>
<td>{{bigDollar .TotalVolume}}</td>
<td class="{{if lt .PriceChangePercentage24h 0.0}}negative{{else}}positive{{end}}">{{percent .PriceChangePercentage24h}}</td>
<td>{{dollar .CapVolRatio}}</td>
<td>{{percent .SupplyRatio}}</td>
</tr>
{{- end}}
</table>
</body>
</html>
`
