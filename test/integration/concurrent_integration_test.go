//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekman10/stock-lookup/internal/adapters/clients"
	"github.com/dekman10/stock-lookup/internal/adapters/clients/acl"
	"github.com/dekman10/stock-lookup/internal/app"
)

// newStockService wires a full service against the given stub upstream.
func newStockService(t *testing.T, baseURL string) *app.StockService {
	t.Helper()

	httpClient, err := clients.New(&clients.Config{
		ServiceName: "yahoo-finance",
		BaseURL:     baseURL,
		Timeout:     10 * time.Second,
		UserAgent:   "integration-test",
	})
	require.NoError(t, err)

	provider := acl.NewYahooClient(acl.YahooClientConfig{Client: httpClient})

	return app.NewStockService(app.StockServiceConfig{
		Provider: provider,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// TestService_ConcurrentLookups verifies many simultaneous lookups share a
// single client safely and each returns a complete quote.
func TestService_ConcurrentLookups(t *testing.T) {
	var served atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quoteSummaryFixture))
	}))
	defer server.Close()

	service := newStockService(t, server.URL)

	const workers = 25

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			quote, err := service.Lookup(context.Background(), "AAPL")
			if assert.NoError(t, err) {
				assert.Equal(t, "Apple Inc.", quote.Name)
				assert.Equal(t, "AAPL", quote.Ticker)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(workers), served.Load())
}

// TestService_CompareFetchesSequentially verifies a comparison performs its
// two fetches one after the other rather than in parallel.
func TestService_CompareFetchesSequentially(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			cur := maxInFlight.Load()
			if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
				break
			}
		}

		time.Sleep(20 * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(quoteSummaryFixture))
	}))
	defer server.Close()

	service := newStockService(t, server.URL)

	first, second, err := service.Compare(context.Background(), "AAPL", "MSFT")
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, int32(1), maxInFlight.Load())
}
