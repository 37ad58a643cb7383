// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/dekman10/stock-lookup/internal/domain"
	"github.com/dekman10/stock-lookup/internal/ports"
)

// StockService orchestrates stock lookup use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type StockService struct {
	provider ports.QuoteProvider
	logger   *slog.Logger
}

// StockServiceConfig contains configuration for the stock service.
type StockServiceConfig struct {
	Provider ports.QuoteProvider
	Logger   *slog.Logger
}

// NewStockService creates a new stock service with the provided dependencies.
// It panics if the quote provider is nil; the logger defaults to slog.Default().
func NewStockService(cfg StockServiceConfig) *StockService {
	if cfg.Provider == nil {
		panic("app: StockServiceConfig.Provider must not be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StockService{
		provider: cfg.Provider,
		logger:   logger,
	}
}

// Lookup validates the raw ticker input, fetches the quote from the market
// data provider, and normalizes it into a display-ready form. Validation
// failures never reach the provider.
func (s *StockService) Lookup(ctx context.Context, raw string) (*domain.Quote, error) {
	ticker, err := domain.ParseTicker(raw)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "looking up ticker",
		slog.String("ticker", ticker.String()),
	)

	rawQuote, err := s.provider.FetchQuote(ctx, ticker)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch quote",
			slog.String("ticker", ticker.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	quote, err := domain.Normalize(ticker, rawQuote)
	if err != nil {
		s.logger.WarnContext(ctx, "quote has no usable market data",
			slog.String("ticker", ticker.String()),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "looked up ticker",
		slog.String("ticker", quote.Ticker),
		slog.String("name", quote.Name),
	)

	return quote, nil
}

// Compare looks up two tickers for side-by-side display. Both inputs are
// validated before any provider call is made, and the second fetch is
// skipped when the first one fails.
func (s *StockService) Compare(ctx context.Context, rawFirst, rawSecond string) (*domain.Quote, *domain.Quote, error) {
	first, err := domain.ParseTicker(rawFirst)
	if err != nil {
		return nil, nil, err
	}

	second, err := domain.ParseTicker(rawSecond)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "comparing tickers",
		slog.String("first", first.String()),
		slog.String("second", second.String()),
	)

	firstQuote, err := s.lookupParsed(ctx, first)
	if err != nil {
		return nil, nil, err
	}

	secondQuote, err := s.lookupParsed(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	return firstQuote, secondQuote, nil
}

func (s *StockService) lookupParsed(ctx context.Context, ticker domain.Ticker) (*domain.Quote, error) {
	rawQuote, err := s.provider.FetchQuote(ctx, ticker)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch quote",
			slog.String("ticker", ticker.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return domain.Normalize(ticker, rawQuote)
}
