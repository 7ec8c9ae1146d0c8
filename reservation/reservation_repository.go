package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, court_id, user_id, start_time, duration, price, status, created_at`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetReservations(ctx context.Context, filter Filter) ([]Reservation, error) {
	conditions := []string{}
	args := []any{}

	if filter.CourtID != 0 {
		args = append(args, filter.CourtID)
		conditions = append(conditions, fmt.Sprintf("court_id=$%d", len(args)))
	}

	if !filter.Date.IsZero() {
		day := startOfDay(filter.Date)
		args = append(args, day, day.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d AND start_time < $%d", len(args)-1, len(args)))
	}

	if len(filter.Status) != 0 {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status=$%d", len(args)))
	}

	sql := `SELECT ` + reservationColumns + ` FROM padel.reservation`

	if len(conditions) != 0 {
		sql += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	sql += ` ORDER BY start_time;`

	reservations, err := r.query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	return reservations, nil
}

func (r *Repository) GetReservationsByUser(ctx context.Context, userID int64) ([]Reservation, error) {
	sql := `
			SELECT ` + reservationColumns + `
			FROM padel.reservation
			WHERE user_id=$1
			ORDER BY start_time DESC;
		`

	reservations, err := r.query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for user '%v': %w", userID, err)
	}

	return reservations, nil
}

// GetBookedReservations returns the booked reservations of a court that
// start on the calendar date of day.
func (r *Repository) GetBookedReservations(ctx context.Context, courtID int64, day time.Time) ([]Reservation, error) {
	sql := `
			SELECT ` + reservationColumns + `
			FROM padel.reservation
			WHERE court_id=$1
			AND status='booked'
			AND start_time >= $2 AND start_time < $3
			ORDER BY start_time;
		`

	start := startOfDay(day)
	reservations, err := r.query(ctx, sql, courtID, start, start.AddDate(0, 0, 1))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked reservations for court '%v': %w", courtID, err)
	}

	return reservations, nil
}

func (r *Repository) GetReservationByID(ctx context.Context, id int64) (Reservation, error) {
	sql := `
			SELECT ` + reservationColumns + `
			FROM padel.reservation
			WHERE id=$1;
		`

	var reservation Reservation
	err := scanReservation(r.pool.QueryRow(ctx, sql, id), &reservation)

	if errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, ErrReservationNotFound
	}

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to fetch reservation with id %v: %w", id, err)
	}

	return reservation, nil
}

func (r *Repository) InsertReservation(ctx context.Context, reservation Reservation) (Reservation, error) {
	sql := `
			INSERT INTO padel.reservation(court_id, user_id, start_time, duration, price, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		reservation.CourtID,
		reservation.UserID,
		reservation.StartTime,
		reservation.Duration,
		reservation.Price,
		reservation.Status,
	).Scan(&reservation.ID, &reservation.CreatedAt)

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return reservation, nil
}

func (r *Repository) SetReservationStatus(ctx context.Context, id int64, status Status) error {
	sql := `
			UPDATE padel.reservation
			SET status=$1
			WHERE id=$2;
		`

	tag, err := r.pool.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update reservation '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) DeleteReservation(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM padel.reservation WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete reservation '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) GetReservationCountPerCourt(ctx context.Context) ([]CourtReservationCount, error) {
	sql := `
		SELECT court.id, court.name, COUNT(*) as reservation_count
		FROM padel.reservation
		JOIN padel.court ON court.id = reservation.court_id
		WHERE reservation.status IN ('booked', 'completed')
		GROUP BY court.id, court.name
		ORDER BY reservation_count DESC
	`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation count per court: %w", err)
	}

	defer rows.Close()

	stats := []CourtReservationCount{}

	for rows.Next() {
		var stat CourtReservationCount
		if err := rows.Scan(&stat.CourtID, &stat.CourtName, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetReservationCountPerWeekDay(ctx context.Context) ([]WeekDayReservationCount, error) {
	sql := `
		SELECT
			TO_CHAR(start_time, 'FMDay') as day_of_week,
			COUNT(*) as reservation_count
		FROM
			padel.reservation
		WHERE status IN ('booked', 'completed')
		GROUP BY
			TO_CHAR(start_time, 'FMDay')
		ORDER BY
			reservation_count DESC;
	`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayReservationCount{}

	for rows.Next() {
		var stat WeekDayReservationCount
		if err := rows.Scan(&stat.WeekDay, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, nil
}

// GetCourtStatsInPeriod aggregates reservations starting in [start, end).
func (r *Repository) GetCourtStatsInPeriod(ctx context.Context, start, end time.Time) ([]CourtPeriodStats, error) {
	sql := `
		SELECT court.id, court.name, COUNT(*) as reservation_count, COALESCE(SUM(reservation.price), 0)::float8 as revenue
		FROM padel.reservation
		JOIN padel.court ON court.id = reservation.court_id
		WHERE reservation.start_time >= $1 AND reservation.start_time < $2
		AND reservation.status IN ('booked', 'completed')
		GROUP BY court.id, court.name
		ORDER BY reservation_count DESC
	`

	rows, err := r.pool.Query(ctx, sql, start, end)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch court stats in period: %w", err)
	}

	defer rows.Close()

	stats := []CourtPeriodStats{}

	for rows.Next() {
		var stat CourtPeriodStats
		if err := rows.Scan(&stat.CourtID, &stat.CourtName, &stat.Count, &stat.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]Reservation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reservations := []Reservation{}

	for rows.Next() {
		var reservation Reservation
		if err := scanReservation(rows, &reservation); err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

func scanReservation(row pgx.Row, reservation *Reservation) error {
	return row.Scan(
		&reservation.ID,
		&reservation.CourtID,
		&reservation.UserID,
		&reservation.StartTime,
		&reservation.Duration,
		&reservation.Price,
		&reservation.Status,
		&reservation.CreatedAt,
	)
}
