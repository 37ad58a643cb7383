// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/dekman10/stock-lookup/internal/adapters/clients"
	"github.com/dekman10/stock-lookup/internal/domain"
	"github.com/dekman10/stock-lookup/internal/platform/logging"
)

const (
	// serviceName identifies the downstream provider in logs and health checks.
	serviceName = "yahoo-finance"

	// quoteSummaryModules lists the API modules needed to build a full quote.
	quoteSummaryModules = "price,summaryDetail,financialData"

	// healthCheckSymbol is a liquid symbol used to probe provider reachability.
	healthCheckSymbol = "AAPL"
)

// YahooClientConfig contains configuration for the Yahoo Finance client.
type YahooClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the quoteSummary API host.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// YahooClient implements ports.QuoteProvider against the Yahoo Finance
// v10 quoteSummary API. It translates the provider's wrapped-value wire
// format into domain.RawQuote and classifies every failure into one of
// the domain fetch errors.
type YahooClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewYahooClient creates a new Yahoo Finance client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewYahooClient(cfg YahooClientConfig) *YahooClient {
	if cfg.Client == nil {
		panic("YahooClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &YahooClient{
		client: cfg.Client,
		logger: logger,
	}
}

// FetchQuote fetches the quote summary for a ticker.
// Implements ports.QuoteProvider.
func (c *YahooClient) FetchQuote(ctx context.Context, ticker domain.Ticker) (*domain.RawQuote, error) {
	path := quoteSummaryPath(ticker.String())
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "fetching quote summary", slog.String("ticker", ticker.String()))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	// The API answers 404 for symbols it does not know.
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNoDataError(ticker.String())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("quote API error",
			slog.Int("status_code", resp.StatusCode),
			slog.String("ticker", ticker.String()),
		)
		return nil, domain.NewUpstreamError(fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	var external yfQuoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, domain.NewUnknownFetchError(fmt.Errorf("decoding quote summary: %w", err))
	}

	if external.QuoteSummary.Error != nil {
		c.logger.Warn("quote API returned error envelope",
			slog.String("code", external.QuoteSummary.Error.Code),
			slog.String("description", external.QuoteSummary.Error.Description),
		)
		return nil, domain.NewNoDataError(ticker.String())
	}

	if len(external.QuoteSummary.Result) == 0 {
		return nil, domain.NewNoDataError(ticker.String())
	}

	raw := translateToDomain(&external.QuoteSummary.Result[0])

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("ticker", ticker.String()))

	return raw, nil
}

// quoteSummaryPath builds the request path for a symbol.
func quoteSummaryPath(symbol string) string {
	return "/v10/finance/quoteSummary/" + url.PathEscape(symbol) + "?modules=" + quoteSummaryModules
}

// translateToDomain converts the external API result to a domain RawQuote.
// Missing modules contribute nothing; the coalescing rules live in the
// domain, so this is a plain field-by-field mapping.
func translateToDomain(result *yfQuoteSummaryResult) *domain.RawQuote {
	raw := &domain.RawQuote{}

	if p := result.Price; p != nil {
		raw.ShortName = p.ShortName
		raw.LongName = p.LongName
		raw.Currency = p.Currency
		raw.RegularMarketPrice = p.RegularMarketPrice.Raw
		raw.RegularMarketPreviousClose = p.RegularMarketPreviousClose.Raw
		raw.MarketCap = p.MarketCap.Raw
	}

	if d := result.SummaryDetail; d != nil {
		raw.PreviousClose = d.PreviousClose.Raw
		raw.FiftyTwoWeekHigh = d.FiftyTwoWeekHigh.Raw
		raw.FiftyTwoWeekLow = d.FiftyTwoWeekLow.Raw
		if raw.MarketCap == nil {
			raw.MarketCap = d.MarketCap.Raw
		}
	}

	if f := result.FinancialData; f != nil {
		raw.CurrentPrice = f.CurrentPrice.Raw
		raw.RecommendationKey = f.RecommendationKey
		raw.TargetMeanPrice = f.TargetMeanPrice.Raw
		raw.TargetHighPrice = f.TargetHighPrice.Raw
		raw.TargetLowPrice = f.TargetLowPrice.Raw
		raw.NumberOfAnalystOpinions = f.NumberOfAnalystOpinions.Raw
	}

	return raw
}

// classifyTransportError maps a transport-level failure to a domain error.
// Unreachable-network conditions (DNS failure, refused connection, timeout)
// become connectivity errors; anything else is an unknown fetch failure.
func classifyTransportError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.NewConnectivityError(err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.NewConnectivityError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewConnectivityError(err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewConnectivityError(err)
	}

	return domain.NewUnknownFetchError(err)
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *YahooClient) Name() string {
	return serviceName
}

// Check performs a health check by fetching a well-known symbol.
// Implements ports.HealthChecker.
func (c *YahooClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, quoteSummaryPath(healthCheckSymbol))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
