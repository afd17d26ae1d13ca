package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Profile updated", user)
}

func (h *UserHandler) ListPaymentCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	cards, err := h.service.ListPaymentCards(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment cards retrieved", cards)
}

func (h *UserHandler) AddPaymentCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req request.CreatePaymentCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.service.AddPaymentCard(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Payment card added", card)
}

func (h *UserHandler) UpdatePaymentCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	cardID, ok := pathUUID(w, chi.URLParam(r, "cardID"))
	if !ok {
		return
	}

	var req request.UpdatePaymentCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.service.UpdatePaymentCard(r.Context(), userID, cardID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment card updated", card)
}

func (h *UserHandler) DeletePaymentCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	cardID, ok := pathUUID(w, chi.URLParam(r, "cardID"))
	if !ok {
		return
	}

	if err := h.service.DeletePaymentCard(r.Context(), userID, cardID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment card deleted", nil)
}
