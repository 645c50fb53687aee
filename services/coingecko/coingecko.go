package coingecko

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"crypto-tracker/models/constants"

	"github.com/spf13/viper"
)

func New() *Impl {
	return &Impl{
		baseURL:    coingeckoBaseAPI,
		vsCurrency: viper.GetString(constants.VsCurrency),
		client: &http.Client{
			Timeout: clientHTTPTimeout,
		},
	}
}

// FetchMarkets retrieves the current snapshot of the requested assets in a
// single call. With no ids the API default ranking applies and perPage caps
// the result.
func (service *Impl) FetchMarkets(ids []string, perPage int, page int) ([]MarketData, error) {
	params := url.Values{}
	params.Set("vs_currency", service.vsCurrency)
	if len(ids) > 0 {
		params.Set("ids", strings.Join(ids, ","))
	}
	params.Set("order", snapshotOrder)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("sparkline", "false")

	endpoint := fmt.Sprintf("%s/coins/markets?%s", service.baseURL, params.Encode())
	resp, err := service.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result []MarketData
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// FetchMarketChart retrieves one asset's daily price, market cap and volume
// series over the given lookback window.
func (service *Impl) FetchMarketChart(id string, days int) (*MarketChart, error) {
	params := url.Values{}
	params.Set("vs_currency", service.vsCurrency)
	params.Set("days", strconv.Itoa(days))

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?%s", service.baseURL, id, params.Encode())
	resp, err := service.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result MarketChart
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Prices) == 0 {
		return nil, ErrMissingSeries
	}
	return &result, nil
}

// FetchGlobal retrieves the market-wide indicator shown on the dashboard
// header.
func (service *Impl) FetchGlobal() (*GlobalData, error) {
	endpoint := fmt.Sprintf("%s/global", service.baseURL)
	resp, err := service.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var result GlobalResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result.Data, nil
}
