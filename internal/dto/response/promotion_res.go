package response

import (
	"time"

	"cinema-ebooking/internal/data/entity"
)

type PromotionResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Description     *string   `json:"description,omitempty"`
	DiscountPercent string    `json:"discount_percent"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
}

func NewPromotionResponse(promo *entity.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:              promo.ID.String(),
		Code:            promo.Code,
		Description:     promo.Description,
		DiscountPercent: promo.DiscountPercent.StringFixed(2),
		StartDate:       promo.StartDate,
		EndDate:         promo.EndDate,
	}
}

type PromotionListResponse struct {
	Promotions []*PromotionResponse `json:"promotions"`
	Pagination Pagination           `json:"pagination"`
}
