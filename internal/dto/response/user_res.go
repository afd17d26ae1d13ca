package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     *string   `json:"first_name,omitempty"`
	LastName      *string   `json:"last_name,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Role:          string(user.Role),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

type PaymentCardResponse struct {
	ID             string `json:"id"`
	CardholderName string `json:"cardholder_name"`
	Brand          string `json:"brand"`
	Last4          string `json:"last4"`
	ExpMonth       int    `json:"exp_month"`
	ExpYear        int    `json:"exp_year"`
}

func NewPaymentCardResponse(card *entity.PaymentCard) *PaymentCardResponse {
	return &PaymentCardResponse{
		ID:             card.ID.String(),
		CardholderName: card.CardholderName,
		Brand:          card.Brand,
		Last4:          card.Last4,
		ExpMonth:       card.ExpMonth,
		ExpYear:        card.ExpYear,
	}
}
