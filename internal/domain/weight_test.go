package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOrderWeight(t *testing.T) {
	tests := []struct {
		name     string
		lines    []OrderLine
		expected string
	}{
		{
			name:     "empty order",
			lines:    nil,
			expected: "0",
		},
		{
			name: "kilograms pass through",
			lines: []OrderLine{
				{Quantity: 2, Weight: decimal.NewFromFloat(1.5), Unit: "kg"},
			},
			expected: "3",
		},
		{
			name: "grams divided by thousand",
			lines: []OrderLine{
				{Quantity: 2, Weight: decimal.NewFromInt(500), Unit: "g"},
			},
			expected: "1",
		},
		{
			name: "gram unit aliases",
			lines: []OrderLine{
				{Quantity: 1, Weight: decimal.NewFromInt(250), Unit: "gms"},
				{Quantity: 1, Weight: decimal.NewFromInt(750), Unit: "grams"},
			},
			expected: "1",
		},
		{
			name: "liters count as kilograms",
			lines: []OrderLine{
				{Quantity: 3, Weight: decimal.NewFromInt(1), Unit: "l"},
			},
			expected: "3",
		},
		{
			name: "milliliters divided by thousand",
			lines: []OrderLine{
				{Quantity: 2, Weight: decimal.NewFromInt(500), Unit: "ml"},
			},
			expected: "1",
		},
		{
			name: "unknown unit falls back to one kilogram",
			lines: []OrderLine{
				{Quantity: 3, Weight: decimal.NewFromInt(42), Unit: "boxes"},
			},
			expected: "3",
		},
		{
			name: "zero weight defaults to one kilogram",
			lines: []OrderLine{
				{Quantity: 2, Unit: "kg"},
			},
			expected: "2",
		},
		{
			name: "zero quantity treated as one",
			lines: []OrderLine{
				{Quantity: 0, Weight: decimal.NewFromInt(2), Unit: "kg"},
			},
			expected: "2",
		},
		{
			name: "mixed order",
			lines: []OrderLine{
				{Quantity: 2, Weight: decimal.NewFromInt(500), Unit: "g"},  // 1.0
				{Quantity: 1, Weight: decimal.NewFromInt(1), Unit: "ltr"},  // 1.0
				{Quantity: 1, Weight: decimal.NewFromFloat(0.5), Unit: ""}, // 0.5
			},
			expected: "2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := CalculateOrderWeight(tt.lines)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, total.String())
		})
	}
}

func TestPrimaryProductType(t *testing.T) {
	assert.Equal(t, ProductTypePerishable, PrimaryProductType([]string{"GENERAL", "PERISHABLE"}))
	assert.Equal(t, "GENERAL", PrimaryProductType([]string{"GENERAL", "FROZEN"}))
	assert.Equal(t, ProductTypeGeneral, PrimaryProductType(nil))
}
