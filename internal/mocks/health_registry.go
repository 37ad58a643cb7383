package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dekman10/stock-lookup/internal/ports"
)

// HealthRegistry is a testify mock for ports.HealthRegistry.
type HealthRegistry struct {
	mock.Mock
}

var _ ports.HealthRegistry = (*HealthRegistry)(nil)

func (m *HealthRegistry) Register(checker ports.HealthChecker) error {
	ret := m.Called(checker)

	return ret.Error(0)
}

func (m *HealthRegistry) CheckAll(ctx context.Context) *ports.HealthResult {
	ret := m.Called(ctx)

	var result *ports.HealthResult
	if ret.Get(0) != nil {
		result = ret.Get(0).(*ports.HealthResult)
	}

	return result
}
