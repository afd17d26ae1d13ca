package request

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type CreatePaymentCardRequest struct {
	CardholderName string `json:"cardholder_name" validate:"required,max=100"`
	CardNumber     string `json:"card_number" validate:"required,min=12,max=19"`
	ExpMonth       int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear        int    `json:"exp_year" validate:"required,min=2000,max=2100"`
}

type UpdatePaymentCardRequest struct {
	CardholderName string `json:"cardholder_name" validate:"required,max=100"`
	ExpMonth       int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear        int    `json:"exp_year" validate:"required,min=2000,max=2100"`
}
