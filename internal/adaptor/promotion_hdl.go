package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PromotionHandler struct {
	service usecase.PromotionService
	log     *zap.Logger
}

func NewPromotionHandler(service usecase.PromotionService, log *zap.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		log:     log.With(zap.String("handler", "promotion")),
	}
}

func (h *PromotionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidatePromotionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	promo, err := h.service.Validate(r.Context(), req.Code)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Promotion is valid", promo)
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	list, err := h.service.FindAll(r.Context(), page, perPage)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Promotions retrieved", list)
}

func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PromotionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	promo, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Promotion created", promo)
}

func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	promoID, ok := pathUUID(w, chi.URLParam(r, "promotionID"))
	if !ok {
		return
	}

	var req request.PromotionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	promo, err := h.service.Update(r.Context(), promoID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Promotion updated", promo)
}

func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	promoID, ok := pathUUID(w, chi.URLParam(r, "promotionID"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), promoID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Promotion deleted", nil)
}
