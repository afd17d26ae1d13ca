package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

func (h *ShowtimeHandler) SeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathUUID(w, chi.URLParam(r, "showtimeID"))
	if !ok {
		return
	}

	seatMap, err := h.service.SeatMap(r.Context(), showtimeID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Seat map retrieved", seatMap)
}

func (h *ShowtimeHandler) ListShowrooms(w http.ResponseWriter, r *http.Request) {
	showrooms, err := h.service.ListShowrooms(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Showrooms retrieved", showrooms)
}

func (h *ShowtimeHandler) CreateShowroom(w http.ResponseWriter, r *http.Request) {
	var req request.ShowroomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	showroom, err := h.service.CreateShowroom(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Showroom created", showroom)
}

func (h *ShowtimeHandler) UpdateShowroom(w http.ResponseWriter, r *http.Request) {
	showroomID, ok := pathUUID(w, chi.URLParam(r, "showroomID"))
	if !ok {
		return
	}

	var req request.ShowroomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	showroom, err := h.service.UpdateShowroom(r.Context(), showroomID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Showroom updated", showroom)
}

func (h *ShowtimeHandler) DeleteShowroom(w http.ResponseWriter, r *http.Request) {
	showroomID, ok := pathUUID(w, chi.URLParam(r, "showroomID"))
	if !ok {
		return
	}

	if err := h.service.DeleteShowroom(r.Context(), showroomID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Showroom deleted", nil)
}

func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Showtime created", showtime)
}

func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathUUID(w, chi.URLParam(r, "showtimeID"))
	if !ok {
		return
	}

	var req request.ShowtimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Showtime updated", showtime)
}

func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, ok := pathUUID(w, chi.URLParam(r, "showtimeID"))
	if !ok {
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Showtime deleted", nil)
}
