package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UFValue is the UF (Unidad de Fomento) value used to convert UF prices to
// CLP. Fallback is true when the external indicator service could not be
// reached and the configured default was used.
type UFValue struct {
	Value     decimal.Decimal `json:"value"`
	Date      time.Time       `json:"date"`
	Fallback  bool            `json:"fallback"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
