package entity

import (
	"strings"

	"github.com/google/uuid"
)

// MaxCardsPerUser caps how many cards a profile can store.
const MaxCardsPerUser = 4

// PaymentCard is a stored payment method. Only the brand, last four
// digits and expiry survive ingestion; the full number is never persisted
// and the card is never charged by this service.
type PaymentCard struct {
	Base
	UserID         uuid.UUID `db:"user_id"`
	CardholderName string    `db:"cardholder_name"`
	Brand          string    `db:"brand"`
	Last4          string    `db:"last4"`
	ExpMonth       int       `db:"exp_month"`
	ExpYear        int       `db:"exp_year"`
}

// DetectCardBrand guesses the card network from the number prefix.
func DetectCardBrand(number string) string {
	n := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	switch {
	case strings.HasPrefix(n, "4"):
		return "visa"
	case len(n) > 1 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(n, "34") || strings.HasPrefix(n, "37"):
		return "amex"
	case strings.HasPrefix(n, "6"):
		return "discover"
	default:
		return "card"
	}
}

// CardLast4 extracts the last four digits of a card number.
func CardLast4(number string) string {
	n := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(n) < 4 {
		return n
	}
	return n[len(n)-4:]
}
