package request

import "time"

type PromotionRequest struct {
	Code            string    `json:"code" validate:"required,min=2,max=30,alphanum"`
	Description     *string   `json:"description,omitempty" validate:"omitempty,max=200"`
	DiscountPercent string    `json:"discount_percent" validate:"required"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

type ValidatePromotionRequest struct {
	Code string `json:"code" validate:"required,max=30"`
}
