package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/core/services"
)

// --- Mock UFSource ---
type MockUFSource struct {
	mock.Mock
}

var _ portssvc.UFSource = (*MockUFSource)(nil)

func (m *MockUFSource) FetchUF(ctx context.Context) (*domain.UFValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UFValue), args.Error(1)
}

func TestCurrentUF_SourceValue(t *testing.T) {
	ctx := context.Background()
	source := new(MockUFSource)
	fetched := &domain.UFValue{
		Value:     decimal.NewFromFloat(38754.12),
		Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		FetchedAt: time.Now().UTC(),
	}
	source.On("FetchUF", ctx).Return(fetched, nil).Once()

	svc := services.NewUFService(source, decimal.NewFromInt(37000))
	uf := svc.CurrentUF(ctx)

	assert.True(t, uf.Value.Equal(fetched.Value))
	assert.False(t, uf.Fallback)
	source.AssertExpectations(t)
}

func TestCurrentUF_FallbackOnError(t *testing.T) {
	ctx := context.Background()
	source := new(MockUFSource)
	source.On("FetchUF", ctx).Return(nil, assert.AnError).Once()

	svc := services.NewUFService(source, decimal.NewFromInt(37000))
	uf := svc.CurrentUF(ctx)

	assert.True(t, uf.Value.Equal(decimal.NewFromInt(37000)), "fallback value should be used")
	assert.True(t, uf.Fallback)
	assert.False(t, uf.FetchedAt.IsZero())
	source.AssertExpectations(t)
}
