// Package mocks provides test doubles for port interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dekman10/stock-lookup/internal/domain"
)

// QuoteProvider is a mock implementation of ports.QuoteProvider.
type QuoteProvider struct {
	mock.Mock
}

// FetchQuote provides a mock function with given fields: ctx, ticker.
func (m *QuoteProvider) FetchQuote(ctx context.Context, ticker domain.Ticker) (*domain.RawQuote, error) {
	ret := m.Called(ctx, ticker)

	var raw *domain.RawQuote
	if ret.Get(0) != nil {
		raw = ret.Get(0).(*domain.RawQuote)
	}

	return raw, ret.Error(1)
}
