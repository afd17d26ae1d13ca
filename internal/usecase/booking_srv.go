package usecase

import (
	"context"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/dto/response"
	"cinema-ebooking/internal/notify"
	"cinema-ebooking/pkg/database"
	"cinema-ebooking/pkg/monitoring"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	FindByID(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*response.BookingResponse, error)
	FindByUser(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.BookingListResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) error
}

type bookingService struct {
	repo     *repository.Repository
	db       database.PgxIface
	notifier notify.Dispatcher
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, db database.PgxIface, notifier notify.Dispatcher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		db:       db,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

// Create books the requested seats for a showtime in a single
// transaction. The showtime row is locked first, so two checkouts for
// the same screening run one after the other; conflicting ticket rows
// are then locked and checked. Either every seat is booked or none is.
func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, ErrInvalidInput("invalid showtime ID")
	}

	selections, seatIDs, err := parseSelections(req.Seats)
	if err != nil {
		return nil, err
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, errInternal("failed to load showtime", err)
	}
	if showtime == nil {
		return nil, ErrNotFound("showtime not found")
	}
	if showtime.StartsAt.Before(time.Now()) {
		return nil, ErrInvalidState("showtime has already started")
	}

	seatsByID, err := s.resolveSeats(ctx, showtime.ShowroomID, seatIDs)
	if err != nil {
		return nil, err
	}

	promo, err := s.resolvePromotion(ctx, req.PromoCode)
	if err != nil {
		return nil, err
	}

	cardID, err := s.resolvePaymentCard(ctx, userID, req.PaymentCardID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Showtime.LockTx(ctx, tx, showtimeID); err != nil {
		return nil, errInternal("failed to lock showtime", err)
	}

	taken, err := s.repo.Ticket.FindConflictingSeatIDsTx(ctx, tx, showtimeID, seatIDs)
	if err != nil {
		return nil, errInternal("failed to check seat availability", err)
	}
	if len(taken) > 0 {
		monitoring.BookingConflict()
		return nil, ErrConflict("seats already taken: %s", seatLabels(taken, seatsByID))
	}

	now := time.Now()
	booking := &entity.Booking{
		Base:          entity.NewBase(),
		OrderID:       utils.GenerateOrderID(),
		UserID:        userID,
		ShowtimeID:    showtimeID,
		PaymentCardID: cardID,
		Subtotal:      decimal.Zero,
		Discount:      decimal.Zero,
		Total:         decimal.Zero,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.CreateTx(ctx, tx, booking); err != nil {
		return nil, errInternal("failed to create booking", err)
	}

	tickets := make([]*entity.Ticket, 0, len(selections))
	subtotal := decimal.Zero
	for _, sel := range selections {
		price := ticketPrice(showtime.BasePrice, sel.ticketType)
		subtotal = subtotal.Add(price)
		tickets = append(tickets, &entity.Ticket{
			BaseSimple: entity.NewBaseSimple(),
			BookingID:  booking.ID,
			ShowtimeID: showtimeID,
			SeatID:     sel.seatID,
			Type:       sel.ticketType,
			Price:      price,
		})
	}

	if err := s.repo.Ticket.CreateBatchTx(ctx, tx, tickets); err != nil {
		return nil, errInternal("failed to create tickets", err)
	}

	booking.Subtotal = subtotal
	if promo != nil {
		code := promo.Code
		booking.PromoCode = &code
		booking.Discount, booking.Total = applyDiscount(subtotal, promo.DiscountPercent)
	} else {
		booking.Total = subtotal
	}
	booking.Status = entity.BookingStatusConfirmed
	booking.UpdatedAt = now

	if err := s.repo.Booking.FinalizeTx(ctx, tx, booking); err != nil {
		return nil, errInternal("failed to finalize booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errInternal("failed to commit booking", err)
	}

	monitoring.BookingCreated()
	s.log.Info("Booking confirmed",
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID.String()),
		zap.Int("seats", len(tickets)),
		zap.String("total", booking.Total.StringFixed(2)),
	)

	s.sendConfirmation(ctx, booking, showtime, tickets, seatsByID)

	return buildBookingResponse(booking, tickets, seatsByID), nil
}

func (s *bookingService) FindByID(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errInternal("failed to load booking", err)
	}
	if booking == nil || (!isAdmin && booking.UserID != userID) {
		return nil, ErrNotFound("booking not found")
	}

	return s.loadBookingResponse(ctx, booking)
}

func (s *bookingService) FindByUser(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.BookingListResponse, error) {
	offset := utils.CalculateOffset(page, perPage)

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, perPage, offset)
	if err != nil {
		return nil, errInternal("failed to load bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errInternal("failed to count bookings", err)
	}

	list := &response.BookingListResponse{
		Bookings: make([]*response.BookingResponse, 0, len(bookings)),
		Pagination: response.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}

	for _, booking := range bookings {
		res, err := s.loadBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		list.Bookings = append(list.Bookings, res)
	}

	return list, nil
}

// Cancel releases the booking's seats. Cancelled tickets stay on record
// but no longer block the seats for the showtime.
func (s *bookingService) Cancel(ctx context.Context, userID uuid.UUID, isAdmin bool, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return errInternal("failed to load booking", err)
	}
	if booking == nil || (!isAdmin && booking.UserID != userID) {
		return ErrNotFound("booking not found")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return ErrInvalidState("booking is already cancelled")
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil {
		return errInternal("failed to load showtime", err)
	}
	if showtime != nil && showtime.StartsAt.Before(time.Now()) {
		return ErrInvalidState("showtime has already started")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return errInternal("failed to cancel booking", err)
	}

	monitoring.BookingCancelled()
	s.log.Info("Booking cancelled",
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", booking.UserID.String()),
	)

	s.sendCancellation(ctx, booking, showtime)

	return nil
}

type seatSelection struct {
	seatID     uuid.UUID
	ticketType entity.TicketType
}

func parseSelections(seats []request.SeatSelection) ([]seatSelection, []uuid.UUID, error) {
	if len(seats) == 0 {
		return nil, nil, ErrInvalidInput("at least one seat must be selected")
	}

	selections := make([]seatSelection, 0, len(seats))
	seatIDs := make([]uuid.UUID, 0, len(seats))
	seen := make(map[uuid.UUID]bool, len(seats))

	for _, sel := range seats {
		seatID, err := uuid.Parse(sel.SeatID)
		if err != nil {
			return nil, nil, ErrInvalidInput("invalid seat ID %q", sel.SeatID)
		}
		if seen[seatID] {
			return nil, nil, ErrInvalidInput("seat %s selected more than once", sel.SeatID)
		}
		seen[seatID] = true

		ticketType, ok := entity.ParseTicketType(sel.TicketType)
		if !ok {
			return nil, nil, ErrInvalidInput("unknown ticket type %q for seat %s", sel.TicketType, sel.SeatID)
		}

		selections = append(selections, seatSelection{seatID: seatID, ticketType: ticketType})
		seatIDs = append(seatIDs, seatID)
	}

	return selections, seatIDs, nil
}

func (s *bookingService) resolveSeats(ctx context.Context, showroomID uuid.UUID, seatIDs []uuid.UUID) (map[uuid.UUID]*entity.Seat, error) {
	seats, err := s.repo.Seat.FindSeatsForBooking(ctx, showroomID, seatIDs)
	if err != nil {
		return nil, errInternal("failed to resolve seats", err)
	}

	seatsByID := make(map[uuid.UUID]*entity.Seat, len(seats))
	for _, seat := range seats {
		seatsByID[seat.ID] = seat
	}

	for _, seatID := range seatIDs {
		if seatsByID[seatID] == nil {
			return nil, ErrInvalidInput("seat %s does not belong to this screening room", seatID.String())
		}
	}

	return seatsByID, nil
}

func (s *bookingService) resolvePromotion(ctx context.Context, promoCode *string) (*entity.Promotion, error) {
	if promoCode == nil || *promoCode == "" {
		return nil, nil
	}

	promo, err := s.repo.Promotion.FindByCode(ctx, *promoCode)
	if err != nil {
		return nil, errInternal("failed to load promotion", err)
	}
	if promo == nil {
		return nil, ErrNotFound("promotion code not found")
	}
	if !promo.ActiveOn(time.Now()) {
		return nil, ErrInvalidState("promotion code is not active")
	}

	return promo, nil
}

func (s *bookingService) resolvePaymentCard(ctx context.Context, userID uuid.UUID, rawCardID *string) (*uuid.UUID, error) {
	if rawCardID == nil || *rawCardID == "" {
		return nil, nil
	}

	cardID, err := uuid.Parse(*rawCardID)
	if err != nil {
		return nil, ErrInvalidInput("invalid payment card ID")
	}

	card, err := s.repo.PaymentCard.FindByID(ctx, cardID)
	if err != nil {
		return nil, errInternal("failed to load payment card", err)
	}
	if card == nil || card.UserID != userID {
		return nil, ErrInvalidInput("payment card not found")
	}

	return &cardID, nil
}

func (s *bookingService) loadBookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	tickets, err := s.repo.Ticket.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, errInternal("failed to load tickets", err)
	}

	seatIDs := make([]uuid.UUID, 0, len(tickets))
	for _, ticket := range tickets {
		seatIDs = append(seatIDs, ticket.SeatID)
	}

	seatsByID := make(map[uuid.UUID]*entity.Seat, len(seatIDs))
	for _, seatID := range seatIDs {
		seat, err := s.repo.Seat.FindByID(ctx, seatID)
		if err != nil {
			return nil, errInternal("failed to load seat", err)
		}
		if seat != nil {
			seatsByID[seatID] = seat
		}
	}

	return buildBookingResponse(booking, tickets, seatsByID), nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, booking *entity.Booking, showtime *entity.Showtime, tickets []*entity.Ticket, seatsByID map[uuid.UUID]*entity.Seat) {
	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		s.log.Warn("Skipping confirmation email, user lookup failed",
			zap.Error(err), zap.String("user_id", booking.UserID.String()))
		return
	}

	movieTitle := ""
	if movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID); err == nil && movie != nil {
		movieTitle = movie.Title
	}

	labels := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		if seat := seatsByID[ticket.SeatID]; seat != nil {
			labels = append(labels, seat.Label())
		}
	}

	go s.notifier.SendBookingConfirmation(user, notify.BookingEmail{
		OrderID:    booking.OrderID,
		MovieTitle: movieTitle,
		StartsAt:   showtime.StartsAt,
		Seats:      labels,
		Total:      booking.Total,
	})
}

func (s *bookingService) sendCancellation(ctx context.Context, booking *entity.Booking, showtime *entity.Showtime) {
	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		s.log.Warn("Skipping cancellation email, user lookup failed",
			zap.Error(err), zap.String("user_id", booking.UserID.String()))
		return
	}

	details := notify.BookingEmail{OrderID: booking.OrderID, Total: booking.Total}
	if showtime != nil {
		details.StartsAt = showtime.StartsAt
		if movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID); err == nil && movie != nil {
			details.MovieTitle = movie.Title
		}
	}

	go s.notifier.SendBookingCancellation(user, details)
}

func buildBookingResponse(booking *entity.Booking, tickets []*entity.Ticket, seatsByID map[uuid.UUID]*entity.Seat) *response.BookingResponse {
	res := &response.BookingResponse{
		ID:         booking.ID.String(),
		OrderID:    booking.OrderID,
		ShowtimeID: booking.ShowtimeID.String(),
		Status:     string(booking.Status),
		PromoCode:  booking.PromoCode,
		Subtotal:   booking.Subtotal.StringFixed(2),
		Discount:   booking.Discount.StringFixed(2),
		Total:      booking.Total.StringFixed(2),
		Tickets:    make([]*response.TicketResponse, 0, len(tickets)),
		CreatedAt:  booking.CreatedAt,
	}

	for _, ticket := range tickets {
		label := ""
		if seat := seatsByID[ticket.SeatID]; seat != nil {
			label = seat.Label()
		}
		res.Tickets = append(res.Tickets, &response.TicketResponse{
			ID:         ticket.ID.String(),
			SeatID:     ticket.SeatID.String(),
			SeatLabel:  label,
			TicketType: string(ticket.Type),
			Price:      ticket.Price.StringFixed(2),
		})
	}

	return res
}

func seatLabels(seatIDs []uuid.UUID, seatsByID map[uuid.UUID]*entity.Seat) string {
	labels := ""
	for i, seatID := range seatIDs {
		if i > 0 {
			labels += ", "
		}
		if seat := seatsByID[seatID]; seat != nil {
			labels += seat.Label()
		} else {
			labels += seatID.String()
		}
	}
	return labels
}
