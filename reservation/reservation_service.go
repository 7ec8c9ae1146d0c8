package reservation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/hanksha/padel-booking-backend/court"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reservation_service.go -destination=mocks/mock_reservation_repository.go -package=mocks

type ReservationRepository interface {
	GetReservations(ctx context.Context, filter Filter) ([]Reservation, error)
	GetReservationsByUser(ctx context.Context, userID int64) ([]Reservation, error)
	GetBookedReservations(ctx context.Context, courtID int64, day time.Time) ([]Reservation, error)
	GetReservationByID(ctx context.Context, id int64) (Reservation, error)
	InsertReservation(ctx context.Context, reservation Reservation) (Reservation, error)
	SetReservationStatus(ctx context.Context, id int64, status Status) error
	DeleteReservation(ctx context.Context, id int64) error
	GetReservationCountPerCourt(ctx context.Context) ([]CourtReservationCount, error)
	GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error)
	GetCourtStatsInPeriod(ctx context.Context, start, end time.Time) ([]CourtPeriodStats, error)
}

type CourtProvider interface {
	GetCourtByID(ctx context.Context, id int64) (court.Court, error)
}

type Notifier interface {
	ReservationCreated(ctx context.Context, reservation Reservation)
	ReservationCancelled(ctx context.Context, reservation Reservation)
}

type Service struct {
	repo     ReservationRepository
	courts   CourtProvider
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo ReservationRepository, courts CourtProvider, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{repo: repo, courts: courts, notifier: notifier, logger: logger, now: LocalNow}
}

// WithClock replaces the source of "now" used for default and past date
// checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetAvailableSlots lists the slots of duration minutes on date for a
// court, split into available and occupied. A zero date means today and
// a zero duration means DefaultDuration.
func (s *Service) GetAvailableSlots(ctx context.Context, courtID int64, date time.Time, duration int) (Slots, error) {
	if duration == 0 {
		duration = DefaultDuration
	}

	if err := ValidateDuration(duration); err != nil {
		return Slots{}, err
	}

	today := startOfDay(s.now())

	if date.IsZero() {
		date = today
	}

	if startOfDay(date).Before(today) {
		return Slots{}, fmt.Errorf("%w: %v is in the past", ErrInvalidDate, date.Format(time.DateOnly))
	}

	if _, err := s.bookableCourt(ctx, courtID); err != nil {
		return Slots{}, err
	}

	booked, err := s.repo.GetBookedReservations(ctx, courtID, date)

	if err != nil {
		return Slots{}, err
	}

	return GenerateSlots(date, duration, booked), nil
}

// CreateReservation admits a booking request. Regular users can only book
// for themselves, in the future, on a bookable court and on a free slot.
// Administrators bypass those checks so they can record retroactive or
// corrective bookings.
//
// The availability check and the insert are not atomic: two concurrent
// requests for the same slot can both be admitted.
func (s *Service) CreateReservation(ctx context.Context, req Request, principal auth.Principal) (Reservation, error) {
	if err := ValidateDuration(req.Duration); err != nil {
		return Reservation{}, err
	}

	if req.StartTime.IsZero() {
		return Reservation{}, fmt.Errorf("%w: start time is required", ErrInvalidDate)
	}

	if req.Price != nil && *req.Price < 0 {
		return Reservation{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidPrice)
	}

	status := req.Status

	if len(status) == 0 {
		status = StatusBooked
	}

	if _, err := ParseStatus(string(status)); err != nil {
		return Reservation{}, err
	}

	c, err := s.courts.GetCourtByID(ctx, req.CourtID)

	if err != nil {
		return Reservation{}, err
	}

	reservation := Reservation{
		CourtID:   req.CourtID,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Status:    status,
	}

	if principal.IsAdministrator() {
		reservation.UserID = req.UserID
	} else {
		if err := s.admit(ctx, c, reservation); err != nil {
			return Reservation{}, err
		}

		userID := principal.UserID
		reservation.UserID = &userID
	}

	if req.Price != nil {
		reservation.Price = *req.Price
	} else {
		reservation.Price = proRataPrice(c.Price, reservation.Duration)
	}

	inserted, err := s.repo.InsertReservation(ctx, reservation)

	if err != nil {
		return Reservation{}, err
	}

	s.logger.Info("reservation created",
		zap.Int64("reservationId", inserted.ID),
		zap.Int64("courtId", inserted.CourtID),
		zap.Time("startTime", inserted.StartTime),
		zap.Int("duration", inserted.Duration),
		zap.String("status", string(inserted.Status)),
		zap.Bool("administrator", principal.IsAdministrator()),
	)

	if inserted.Status == StatusBooked {
		s.notifier.ReservationCreated(ctx, inserted)
	}

	return inserted, nil
}

func (s *Service) admit(ctx context.Context, c court.Court, reservation Reservation) error {
	if reservation.Status != StatusBooked {
		return fmt.Errorf("%w: only administrators can create %v reservations", ErrNotAllowed, reservation.Status)
	}

	if !c.Bookable() {
		return underMaintenance(c)
	}

	if reservation.StartTime.Before(s.now()) {
		return ErrPastReservation
	}

	if !withinOpeningHours(reservation.StartTime, reservation.Duration) {
		return fmt.Errorf("%w: %v for %d minutes is outside opening hours", ErrInvalidDate, reservation.StartTime.Format("15:04"), reservation.Duration)
	}

	existing, err := s.repo.GetBookedReservations(ctx, reservation.CourtID, reservation.StartTime)

	if err != nil {
		return err
	}

	if !IsAvailable(existing, reservation.StartTime, reservation.Duration) {
		return ErrSlotUnavailable
	}

	return nil
}

func (s *Service) bookableCourt(ctx context.Context, courtID int64) (court.Court, error) {
	c, err := s.courts.GetCourtByID(ctx, courtID)

	if err != nil {
		return court.Court{}, err
	}

	if !c.Bookable() {
		return court.Court{}, underMaintenance(c)
	}

	return c, nil
}

func underMaintenance(c court.Court) error {
	return fmt.Errorf("%w: court %v is under maintenance", court.ErrCourtNotFound, c.ID)
}

func (s *Service) GetReservations(ctx context.Context, filter Filter) ([]Reservation, error) {
	if len(filter.Status) != 0 {
		if _, err := ParseStatus(string(filter.Status)); err != nil {
			return nil, err
		}
	}

	return s.repo.GetReservations(ctx, filter)
}

func (s *Service) GetUserReservations(ctx context.Context, userID int64) ([]Reservation, error) {
	return s.repo.GetReservationsByUser(ctx, userID)
}

func (s *Service) GetReservationByID(ctx context.Context, id int64, principal auth.Principal) (Reservation, error) {
	reservation, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return Reservation{}, err
	}

	if !principal.IsAdministrator() && !reservation.OwnedBy(principal.UserID) {
		return Reservation{}, ErrNotAllowed
	}

	return reservation, nil
}

func (s *Service) CancelReservation(ctx context.Context, id int64, principal auth.Principal) error {
	reservation, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return err
	}

	if !principal.IsAdministrator() && !reservation.OwnedBy(principal.UserID) {
		return ErrNotAllowed
	}

	if reservation.Status != StatusBooked {
		return ErrInvalidTransition
	}

	if err := s.repo.SetReservationStatus(ctx, id, StatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = StatusCancelled
	s.notifier.ReservationCancelled(ctx, reservation)

	return nil
}

func (s *Service) CompleteReservation(ctx context.Context, id int64) error {
	reservation, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return err
	}

	if reservation.Status != StatusBooked {
		return ErrInvalidTransition
	}

	return s.repo.SetReservationStatus(ctx, id, StatusCompleted)
}

// DeleteReservation removes the row for good; nothing is kept for audit.
func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	return s.repo.DeleteReservation(ctx, id)
}

func (s *Service) GetReservationCountPerCourt(ctx context.Context) ([]CourtReservationCount, error) {
	return s.repo.GetReservationCountPerCourt(ctx)
}

func (s *Service) GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error) {
	return s.repo.GetReservationCountPerWeekDay(ctx)
}

// GetCourtStatsInPeriod covers whole days from start to end, both
// included.
func (s *Service) GetCourtStatsInPeriod(ctx context.Context, start, end time.Time) ([]CourtPeriodStats, error) {
	start, end = startOfDay(start), startOfDay(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: period ends before it starts", ErrInvalidDate)
	}

	return s.repo.GetCourtStatsInPeriod(ctx, start, end.AddDate(0, 0, 1))
}

func proRataPrice(hourly float64, duration int) float64 {
	return math.Round(hourly*float64(duration)/60*100) / 100
}
