package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	filter := repository.MovieFilter{}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if genre := r.URL.Query().Get("genre"); genre != "" {
		filter.Genre = &genre
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	list, err := h.service.FindAll(r.Context(), filter, page, perPage)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved", list)
}

func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathUUID(w, chi.URLParam(r, "movieID"))
	if !ok {
		return
	}

	movie, err := h.service.FindByID(r.Context(), movieID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved", movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathUUID(w, chi.URLParam(r, "movieID"))
	if !ok {
		return
	}

	var req request.MovieRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	movie, err := h.service.Update(r.Context(), movieID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathUUID(w, chi.URLParam(r, "movieID"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}
