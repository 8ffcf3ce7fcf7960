package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	oneKilogram = decimal.NewFromInt(1)
	thousand    = decimal.NewFromInt(1000)
)

// CalculateOrderWeight derives the total shipment weight in kilograms from
// the order's product lines. Per-unit weights are normalized with a small
// fixed unit table: grams divide by 1000, liters count 1:1 as kilograms and
// milliliters divide by 1000 (1 ml ~ 1 g, a deliberate simplification for
// liquids). Lines with an unknown unit fall back to 1.0 kg per unit, and a
// missing weight defaults to 1.0 before conversion.
func CalculateOrderWeight(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero

	for _, line := range lines {
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		weight := line.Weight
		if weight.IsZero() {
			weight = oneKilogram
		}

		switch strings.ToLower(line.Unit) {
		case "kg", "":
			// уже в килограммах
		case "g", "gms", "grams":
			weight = weight.Div(thousand)
		case "l", "ltr", "litre":
			// 1 литр считаем равным 1 кг
		case "ml":
			weight = weight.Div(thousand)
		default:
			weight = oneKilogram
		}

		total = total.Add(weight.Mul(decimal.NewFromInt(int64(quantity))))
	}

	return total
}
