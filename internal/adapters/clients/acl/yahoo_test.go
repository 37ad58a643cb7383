package acl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekman10/stock-lookup/internal/adapters/clients"
	"github.com/dekman10/stock-lookup/internal/domain"
)

// newTestClient creates a YahooClient pointed at the given test server.
func newTestClient(t *testing.T, serverURL string) *YahooClient {
	t.Helper()

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     serverURL,
		ServiceName: serviceName,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	return NewYahooClient(YahooClientConfig{Client: httpClient})
}

const fullQuoteSummaryBody = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"shortName": "Apple Inc.",
				"longName": "Apple Inc. (Cupertino)",
				"currency": "USD",
				"regularMarketPrice": {"raw": 190.5, "fmt": "190.50"},
				"regularMarketPreviousClose": {"raw": 185.0, "fmt": "185.00"},
				"marketCap": {"raw": 2950000000000, "fmt": "2.95T"}
			},
			"summaryDetail": {
				"previousClose": {"raw": 185.0, "fmt": "185.00"},
				"marketCap": {"raw": 2950000000000, "fmt": "2.95T"},
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

func TestNewYahooClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewYahooClient(YahooClientConfig{Client: nil})
	})
}

func TestFetchQuote_Success(t *testing.T) {
	var requestedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		assert.Equal(t, quoteSummaryModules, r.URL.Query().Get("modules"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fullQuoteSummaryBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	raw, err := client.FetchQuote(context.Background(), domain.Ticker("AAPL"))

	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, "/v10/finance/quoteSummary/AAPL", requestedPath)

	require.NotNil(t, raw.ShortName)
	assert.Equal(t, "Apple Inc.", *raw.ShortName)
	require.NotNil(t, raw.CurrentPrice)
	assert.InDelta(t, 190.5, *raw.CurrentPrice, 0.001)
	require.NotNil(t, raw.PreviousClose)
	assert.InDelta(t, 185.0, *raw.PreviousClose, 0.001)
	require.NotNil(t, raw.FiftyTwoWeekHigh)
	assert.InDelta(t, 199.62, *raw.FiftyTwoWeekHigh, 0.001)
	require.NotNil(t, raw.MarketCap)
	assert.InDelta(t, 2.95e12, *raw.MarketCap, 1)
	require.NotNil(t, raw.RecommendationKey)
	assert.Equal(t, "buy", *raw.RecommendationKey)
	require.NotNil(t, raw.NumberOfAnalystOpinions)
	assert.Equal(t, int64(39), *raw.NumberOfAnalystOpinions)
}

func TestFetchQuote_PriceModuleOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": [{
					"price": {
						"shortName": "Example Corp",
						"regularMarketPrice": {"raw": 10.0},
						"regularMarketPreviousClose": {"raw": 9.5}
					}
				}],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	raw, err := client.FetchQuote(context.Background(), domain.Ticker("EXMP"))

	require.NoError(t, err)
	require.NotNil(t, raw.ShortName)
	assert.Equal(t, "Example Corp", *raw.ShortName)
	assert.Nil(t, raw.CurrentPrice)
	require.NotNil(t, raw.RegularMarketPrice)
	assert.InDelta(t, 10.0, *raw.RegularMarketPrice, 0.001)
	assert.Nil(t, raw.FiftyTwoWeekHigh)
	assert.Nil(t, raw.RecommendationKey)
}

func TestFetchQuote_SymbolEscapedInPath(t *testing.T) {
	var requestedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		_, _ = w.Write([]byte(fullQuoteSummaryBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchQuote(context.Background(), domain.Ticker("BRK-B"))

	require.NoError(t, err)
	assert.Equal(t, "/v10/finance/quoteSummary/BRK-B", requestedPath)
}

func TestFetchQuote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	raw, err := client.FetchQuote(context.Background(), domain.Ticker("faketicker"))

	require.Error(t, err)
	assert.True(t, domain.IsNoData(err))
	assert.Contains(t, err.Error(), "FAKETICKER")
	assert.Nil(t, raw)
}

func TestFetchQuote_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	raw, err := client.FetchQuote(context.Background(), domain.Ticker("AAPL"))

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
	assert.Equal(t, "Server error: HTTP 500", err.Error())
	assert.Nil(t, raw)
}

func TestFetchQuote_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": null,
				"error": {"code": "Not Found", "description": "Quote not found for ticker symbol: XYZ"}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchQuote(context.Background(), domain.Ticker("XYZ"))

	require.Error(t, err)
	assert.True(t, domain.IsNoData(err))
}

func TestFetchQuote_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteSummary": {"result": [], "error": null}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchQuote(context.Background(), domain.Ticker("XYZ"))

	require.Error(t, err)
	assert.True(t, domain.IsNoData(err))
}

func TestFetchQuote_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchQuote(context.Background(), domain.Ticker("AAPL"))

	require.Error(t, err)
	assert.True(t, domain.IsUnknownFetch(err))
	assert.Contains(t, err.Error(), "Error fetching data:")
}

func TestFetchQuote_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(t, serverURL)

	_, err := client.FetchQuote(context.Background(), domain.Ticker("AAPL"))

	require.Error(t, err)
	assert.True(t, domain.IsConnectivity(err))
	assert.Equal(t, "No internet connection. Please check your network and try again.", err.Error())
}

func TestYahooClient_HealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fullQuoteSummaryBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	assert.Equal(t, "yahoo-finance", client.Name())
	assert.NoError(t, client.Check(context.Background()))
}

func TestYahooClient_HealthCheckFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
