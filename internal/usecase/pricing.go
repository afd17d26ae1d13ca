package usecase

import (
	"cinema-ebooking/internal/data/entity"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ticketPrice applies the fare-class multiplier to the showtime's base
// price and rounds to cents, half up.
func ticketPrice(basePrice decimal.Decimal, ticketType entity.TicketType) decimal.Decimal {
	return basePrice.Mul(ticketType.Multiplier()).Round(2)
}

// applyDiscount computes the promotional discount and the final total
// from a subtotal. The discount is rounded to cents half up; the total
// never goes below zero.
func applyDiscount(subtotal, discountPercent decimal.Decimal) (discount, total decimal.Decimal) {
	discount = subtotal.Mul(discountPercent).Div(oneHundred).Round(2)

	total = subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return discount, total
}
