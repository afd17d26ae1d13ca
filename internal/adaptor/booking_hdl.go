package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	page, perPage := pageParams(r)

	list, err := h.service.FindByUser(r.Context(), userID, page, perPage)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", list)
}

func (h *BookingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := pathUUID(w, chi.URLParam(r, "bookingID"))
	if !ok {
		return
	}

	booking, err := h.service.FindByID(r.Context(), userID, isAdmin(r), bookingID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	bookingID, ok := pathUUID(w, chi.URLParam(r, "bookingID"))
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), userID, isAdmin(r), bookingID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

func isAdmin(r *http.Request) bool {
	role, ok := utils.GetRoleFromContext(r.Context())
	return ok && role == "admin"
}
