package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/middleware"
)

type UFService struct {
	source   portssvc.UFSource
	fallback decimal.Decimal
}

var _ portssvc.UFSvcFacade = (*UFService)(nil)

func NewUFService(source portssvc.UFSource, fallback decimal.Decimal) *UFService {
	return &UFService{source: source, fallback: fallback}
}

// CurrentUF returns the UF value to use for conversions right now. When the
// external indicator service fails the configured fallback is returned so
// quote issuing never blocks on it.
func (s *UFService) CurrentUF(ctx context.Context) *domain.UFValue {
	uf, err := s.source.FetchUF(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("UF fetch failed, using fallback value",
			"fallback", s.fallback.String(), "error", err.Error())
		now := time.Now().UTC()
		return &domain.UFValue{
			Value:     s.fallback,
			Date:      now,
			Fallback:  true,
			FetchedAt: now,
		}
	}
	return uf
}
