//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekman10/stock-lookup/internal/adapters/clients"
	"github.com/dekman10/stock-lookup/internal/adapters/clients/acl"
	"github.com/dekman10/stock-lookup/internal/domain"
)

// testAdapterConfig returns a config suitable for adapter integration testing.
func testAdapterConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "yahoo-finance",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		UserAgent:   "integration-test",
	}
}

// newYahooClient builds a YahooClient backed by the given test server URL.
func newYahooClient(t *testing.T, baseURL string) *acl.YahooClient {
	t.Helper()

	httpClient, err := clients.New(testAdapterConfig(baseURL))
	require.NoError(t, err)

	return acl.NewYahooClient(acl.YahooClientConfig{Client: httpClient})
}

const quoteSummaryFixture = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"shortName": "Apple Inc.",
				"currency": "USD",
				"regularMarketPrice": {"raw": 190.5, "fmt": "190.50"},
				"regularMarketPreviousClose": {"raw": 185.0, "fmt": "185.00"},
				"marketCap": {"raw": 2950000000000, "fmt": "2.95T"}
			},
			"summaryDetail": {
				"fiftyTwoWeekLow": {"raw": 124.17, "fmt": "124.17"},
				"fiftyTwoWeekHigh": {"raw": 199.62, "fmt": "199.62"}
			},
			"financialData": {
				"currentPrice": {"raw": 190.5, "fmt": "190.50"},
				"targetHighPrice": {"raw": 240.0, "fmt": "240.00"},
				"targetLowPrice": {"raw": 140.0, "fmt": "140.00"},
				"targetMeanPrice": {"raw": 198.9, "fmt": "198.90"},
				"recommendationKey": "buy",
				"numberOfAnalystOpinions": {"raw": 39, "fmt": "39"}
			}
		}],
		"error": null
	}
}`

// TestYahooAdapter_FetchAndNormalize exercises the full fetch-translate-normalize
// pipeline against a stubbed quoteSummary endpoint.
func TestYahooAdapter_FetchAndNormalize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v10/finance/quoteSummary/AAPL", r.URL.Path)
		assert.Equal(t, "price,summaryDetail,financialData", r.URL.Query().Get("modules"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quoteSummaryFixture))
	}))
	defer server.Close()

	client := newYahooClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticker, err := domain.ParseTicker("AAPL")
	require.NoError(t, err)

	raw, err := client.FetchQuote(ctx, ticker)
	require.NoError(t, err)

	quote, err := domain.Normalize(ticker, raw)
	require.NoError(t, err)

	assert.Equal(t, "Apple Inc.", quote.Name)
	assert.Equal(t, "AAPL", quote.Ticker)
	assert.Equal(t, "$190.50", quote.CurrentPriceFmt)
	assert.Equal(t, "+5.50 (+2.97%)", quote.Change)
	assert.Equal(t, "$2.95T", quote.MarketCap)
	assert.Equal(t, "BUY", quote.Recommendation)
}

// TestYahooAdapter_NotFound verifies a 404 maps to a no-data domain error.
func TestYahooAdapter_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newYahooClient(t, server.URL)

	ticker, err := domain.ParseTicker("FAKETICKER")
	require.NoError(t, err)

	_, err = client.FetchQuote(context.Background(), ticker)
	require.Error(t, err)
	assert.True(t, domain.IsNoData(err))
	assert.Contains(t, err.Error(), "FAKETICKER")
}

// TestYahooAdapter_ServerError verifies a 5xx maps to an upstream domain error.
func TestYahooAdapter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newYahooClient(t, server.URL)

	ticker, err := domain.ParseTicker("AAPL")
	require.NoError(t, err)

	_, err = client.FetchQuote(context.Background(), ticker)
	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

// TestYahooAdapter_ConnectionRefused verifies a dead upstream maps to a
// connectivity domain error.
func TestYahooAdapter_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newYahooClient(t, serverURL)

	ticker, err := domain.ParseTicker("AAPL")
	require.NoError(t, err)

	_, err = client.FetchQuote(context.Background(), ticker)
	require.Error(t, err)
	assert.True(t, domain.IsConnectivity(err))
}

// TestYahooAdapter_HealthCheck verifies the adapter's health check probes
// the quoteSummary endpoint.
func TestYahooAdapter_HealthCheck(t *testing.T) {
	var probed bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probed = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quoteSummaryFixture))
	}))
	defer server.Close()

	client := newYahooClient(t, server.URL)

	assert.Equal(t, "yahoo-finance", client.Name())

	err := client.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, probed)
}
