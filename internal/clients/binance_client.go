// Package clients constructs exchange test-network clients.
package clients

import (
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2"
)

// SpotTestnetBaseURL is the Binance spot test network endpoint. No real funds
// are at risk behind it.
const SpotTestnetBaseURL = "https://testnet.binance.vision"

const defaultHTTPTimeout = 10 * time.Second

// NewBinanceTestnetClient creates a Binance client bound to the spot testnet
// with a bounded HTTP timeout so live calls fail instead of hanging.
func NewBinanceTestnetClient(apiKey, apiSecret string) *binance.Client {
	client := binance.NewClient(apiKey, apiSecret)
	client.BaseURL = SpotTestnetBaseURL
	client.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	return client
}
