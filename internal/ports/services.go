// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNoData, ErrConnectivity, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/dekman10/stock-lookup/internal/domain"
)

// QuoteProvider is the outbound contract for the market data source.
// Adapters implement this against a concrete provider (Yahoo Finance).
//
// FetchQuote is the single external-I/O point of a lookup. Implementations
// must classify every failure into one of the domain fetch error
// categories: domain.ErrConnectivity when the provider is unreachable,
// domain.ErrUpstream when it answers with an HTTP-level error,
// domain.ErrNoData when it answers but knows nothing about the ticker,
// and domain.ErrUnknownFetch for anything else. No error escapes
// unclassified.
type QuoteProvider interface {
	// FetchQuote retrieves the raw summary record for a validated ticker.
	// The implementation should respect context deadlines and cancellation.
	FetchQuote(ctx context.Context, ticker domain.Ticker) (*domain.RawQuote, error)
}
