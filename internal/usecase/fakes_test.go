package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/notify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx satisfies pgx.Tx and records whether the transaction finished
// with a commit or a rollback.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query on fake tx")
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                              { return nil }

// fakeDB hands out a single fakeTx; direct pool queries are not expected
// in these tests.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func (d *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query on fake db")
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec on fake db")
}

func (d *fakeDB) Ping(ctx context.Context) error { return nil }
func (d *fakeDB) Close()                         {}

type fakeShowtimeRepo struct {
	showtimes map[uuid.UUID]*entity.Showtime
	locked    []uuid.UUID
}

func (f *fakeShowtimeRepo) Create(ctx context.Context, st *entity.Showtime) error {
	f.showtimes[st.ID] = st
	return nil
}

func (f *fakeShowtimeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	return f.showtimes[id], nil
}

func (f *fakeShowtimeRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	var out []*entity.Showtime
	for _, st := range f.showtimes {
		if st.MovieID == movieID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeShowtimeRepo) ExistsAt(ctx context.Context, showroomID uuid.UUID, startsAt time.Time) (bool, error) {
	for _, st := range f.showtimes {
		if st.ShowroomID == showroomID && st.StartsAt.Equal(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeShowtimeRepo) Update(ctx context.Context, st *entity.Showtime) error {
	f.showtimes[st.ID] = st
	return nil
}

func (f *fakeShowtimeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.showtimes, id)
	return nil
}

func (f *fakeShowtimeRepo) LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	f.locked = append(f.locked, id)
	return nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID]*entity.Seat
}

func (f *fakeSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	return f.seats[id], nil
}

func (f *fakeSeatRepo) FindByShowroomID(ctx context.Context, showroomID uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, seat := range f.seats {
		if seat.ShowroomID == showroomID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) CountByShowroomID(ctx context.Context, showroomID uuid.UUID) (int64, error) {
	seats, _ := f.FindByShowroomID(ctx, showroomID)
	return int64(len(seats)), nil
}

func (f *fakeSeatRepo) FindSeatsForBooking(ctx context.Context, showroomID uuid.UUID, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, seatID := range seatIDs {
		if seat := f.seats[seatID]; seat != nil && seat.ShowroomID == showroomID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, seats []*entity.Seat) error {
	for _, seat := range seats {
		f.seats[seat.ID] = seat
	}
	return nil
}

type fakeTicketRepo struct {
	conflicting []uuid.UUID
	created     []*entity.Ticket
	reserved    []uuid.UUID
}

func (f *fakeTicketRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range f.created {
		if t.BookingID == bookingID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) FindReservedSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	return f.reserved, nil
}

func (f *fakeTicketRepo) FindConflictingSeatIDsTx(ctx context.Context, tx pgx.Tx, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	requested := make(map[uuid.UUID]bool, len(seatIDs))
	for _, id := range seatIDs {
		requested[id] = true
	}
	var out []uuid.UUID
	for _, id := range f.conflicting {
		if requested[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) CreateBatchTx(ctx context.Context, tx pgx.Tx, tickets []*entity.Ticket) error {
	f.created = append(f.created, tickets...)
	return nil
}

type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*entity.Booking
	created   *entity.Booking
	finalized *entity.Booking
	statuses  map[uuid.UUID]entity.BookingStatus
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	out, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(out)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]entity.BookingStatus)
	}
	f.statuses[bookingID] = status
	if b := f.bookings[bookingID]; b != nil {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	f.created = booking
	if f.bookings == nil {
		f.bookings = make(map[uuid.UUID]*entity.Booking)
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FinalizeTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	f.finalized = booking
	return nil
}

type fakePromotionRepo struct {
	promos map[string]*entity.Promotion // keyed by uppercase code
}

func (f *fakePromotionRepo) Create(ctx context.Context, promo *entity.Promotion) error {
	if f.promos == nil {
		f.promos = make(map[string]*entity.Promotion)
	}
	f.promos[strings.ToUpper(promo.Code)] = promo
	return nil
}

func (f *fakePromotionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	for _, promo := range f.promos {
		if promo.ID == id {
			return promo, nil
		}
	}
	return nil, nil
}

func (f *fakePromotionRepo) FindByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	return f.promos[strings.ToUpper(code)], nil
}

func (f *fakePromotionRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, promo := range f.promos {
		out = append(out, promo)
	}
	return out, nil
}

func (f *fakePromotionRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.promos)), nil
}

func (f *fakePromotionRepo) Update(ctx context.Context, promo *entity.Promotion) error {
	f.promos[strings.ToUpper(promo.Code)] = promo
	return nil
}

func (f *fakePromotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for code, promo := range f.promos {
		if promo.ID == id {
			delete(f.promos, code)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.users == nil {
		f.users = make(map[uuid.UUID]*entity.User)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if user := f.users[id]; user != nil {
		user.PasswordHash = passwordHash
	}
	return nil
}

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	if f.movies == nil {
		f.movies = make(map[uuid.UUID]*entity.Movie)
	}
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, filter repository.MovieFilter, limit, offset int) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, movie := range f.movies {
		out = append(out, movie)
	}
	return out, nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context, filter repository.MovieFilter) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.movies, id)
	return nil
}

type fakePaymentCardRepo struct {
	cards map[uuid.UUID]*entity.PaymentCard
}

func (f *fakePaymentCardRepo) Create(ctx context.Context, card *entity.PaymentCard) error {
	if f.cards == nil {
		f.cards = make(map[uuid.UUID]*entity.PaymentCard)
	}
	f.cards[card.ID] = card
	return nil
}

func (f *fakePaymentCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentCard, error) {
	return f.cards[id], nil
}

func (f *fakePaymentCardRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentCard, error) {
	var out []*entity.PaymentCard
	for _, card := range f.cards {
		if card.UserID == userID {
			out = append(out, card)
		}
	}
	return out, nil
}

func (f *fakePaymentCardRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	out, _ := f.FindByUserID(ctx, userID)
	return int64(len(out)), nil
}

func (f *fakePaymentCardRepo) Update(ctx context.Context, card *entity.PaymentCard) error {
	f.cards[card.ID] = card
	return nil
}

func (f *fakePaymentCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.cards, id)
	return nil
}

type fakeShowroomRepo struct {
	showrooms map[uuid.UUID]*entity.Showroom
	locked    []uuid.UUID
}

func (f *fakeShowroomRepo) Create(ctx context.Context, room *entity.Showroom) error {
	if f.showrooms == nil {
		f.showrooms = make(map[uuid.UUID]*entity.Showroom)
	}
	f.showrooms[room.ID] = room
	return nil
}

func (f *fakeShowroomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showroom, error) {
	return f.showrooms[id], nil
}

func (f *fakeShowroomRepo) FindAll(ctx context.Context) ([]*entity.Showroom, error) {
	var out []*entity.Showroom
	for _, room := range f.showrooms {
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeShowroomRepo) Update(ctx context.Context, room *entity.Showroom) error {
	f.showrooms[room.ID] = room
	return nil
}

func (f *fakeShowroomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.showrooms, id)
	return nil
}

func (f *fakeShowroomRepo) LockTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	f.locked = append(f.locked, id)
	return nil
}

// fakeDispatcher records notification calls; safe for the fire-and-forget
// goroutines the services spawn.
type fakeDispatcher struct {
	mu            sync.Mutex
	verifications int
	resets        int
	profile       int
	confirmations int
	cancellations int
}

func (f *fakeDispatcher) SendVerification(user *entity.User, token uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifications++
}

func (f *fakeDispatcher) SendPasswordReset(user *entity.User, token uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeDispatcher) SendProfileUpdated(user *entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile++
}

func (f *fakeDispatcher) SendBookingConfirmation(user *entity.User, details notify.BookingEmail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations++
}

func (f *fakeDispatcher) SendBookingCancellation(user *entity.User, details notify.BookingEmail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancellations++
}
