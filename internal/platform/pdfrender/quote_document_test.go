package pdfrender

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "$0"},
		{name: "under a thousand", amount: decimal.NewFromInt(999), want: "$999"},
		{name: "thousands", amount: decimal.NewFromInt(1234), want: "$1.234"},
		{name: "millions", amount: decimal.NewFromInt(1234567), want: "$1.234.567"},
		{name: "rounds decimals away", amount: decimal.NewFromFloat(76000.49), want: "$76.000"},
		{name: "negative", amount: decimal.NewFromInt(-45000), want: "-$45.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCLP(tt.amount))
		})
	}
}
