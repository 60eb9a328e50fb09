package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// UFSource fetches the current UF value from an external indicator service.
type UFSource interface {
	// FetchUF returns the latest published UF value.
	FetchUF(ctx context.Context) (*domain.UFValue, error)
}

// UFSvcFacade exposes the UF value with fallback handling.
type UFSvcFacade interface {
	// CurrentUF returns the UF value to use for conversions right now.
	// Never fails: when the source is unreachable the configured fallback
	// is returned with Fallback set.
	CurrentUF(ctx context.Context) *domain.UFValue
}
