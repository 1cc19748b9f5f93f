package clients

import (
	"net/http"

	"github.com/hirokisan/bybit/v2"
)

// NewBybitTestnetClient creates a Bybit client bound to the test network.
func NewBybitTestnetClient(apiKey, apiSecret string) *bybit.Client {
	httpClient := &http.Client{Timeout: defaultHTTPTimeout}

	return bybit.NewClient().
		WithHTTPClient(httpClient).
		WithBaseURL(bybit.TestNetBaseURL).
		WithAuth(apiKey, apiSecret)
}
