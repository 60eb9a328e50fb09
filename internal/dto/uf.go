package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UFValueResponse reports the UF value in use. Fallback is true when the
// external indicator service was unreachable and the configured default
// was served instead.
type UFValueResponse struct {
	Value     decimal.Decimal `json:"value"`
	Date      time.Time       `json:"date"`
	Fallback  bool            `json:"fallback"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
