package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Movie     *MovieHandler
	Showtime  *ShowtimeHandler
	Booking   *BookingHandler
	Promotion *PromotionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Showtime:  NewShowtimeHandler(service.Showtime, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Promotion: NewPromotionHandler(service.Promotion, log),
	}
}

// decodeAndValidate parses the JSON body into dst and runs tag validation.
// Returns false after writing the error response.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); validationErrors != nil {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// respondError maps a service error to its HTTP status.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	var svcErr *usecase.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case usecase.KindInvalidInput, usecase.KindInvalidState:
			utils.ResponseBadRequest(w, svcErr.Message, nil)
			return
		case usecase.KindNotFound:
			utils.ResponseNotFound(w, svcErr.Message)
			return
		case usecase.KindConflict:
			utils.ResponseConflict(w, svcErr.Message)
			return
		case usecase.KindUnauthorized:
			utils.ResponseUnauthorized(w, svcErr.Message)
			return
		}
	}

	log.Error("Request failed", zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}

// pathUUID parses a chi URL parameter as a UUID. Returns false after
// writing the error response.
func pathUUID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ID in URL", nil)
		return uuid.Nil, false
	}
	return id, true
}

// authedUser pulls the authenticated user ID from the request context.
func authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

func pageParams(r *http.Request) (page, perPage int) {
	page = utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage = utils.ParseInt(r.URL.Query().Get("per_page"), 20)
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
