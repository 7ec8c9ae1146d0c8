package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetCourts(ctx context.Context) ([]Court, error) {
	sql := `
			SELECT id, name, price, maintenance, time_slots, created_at
			FROM padel.court
			ORDER BY id;
		`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	courts := []Court{}

	for rows.Next() {
		var court Court
		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Price,
			&court.Maintenance,
			&court.TimeSlots,
			&court.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

func (r *Repository) GetCourtByID(ctx context.Context, id int64) (Court, error) {
	sql := `
			SELECT id, name, price, maintenance, time_slots, created_at
			FROM padel.court
			WHERE id=$1;
		`

	var court Court
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&court.ID,
		&court.Name,
		&court.Price,
		&court.Maintenance,
		&court.TimeSlots,
		&court.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, err)
	}

	return court, nil
}

func (r *Repository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
			INSERT INTO padel.court(name, price, maintenance, time_slots)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		court.Name,
		court.Price,
		court.Maintenance,
		court.TimeSlots,
	).Scan(&court.ID, &court.CreatedAt)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", err)
	}

	return court, nil
}

func (r *Repository) UpdateCourt(ctx context.Context, court Court) error {
	sql := `
			UPDATE padel.court
			SET
				name=$1,
				price=$2,
				maintenance=$3,
				time_slots=$4
			WHERE id=$5;
		`

	tag, err := r.pool.Exec(ctx, sql,
		court.Name,
		court.Price,
		court.Maintenance,
		court.TimeSlots,
		court.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func (r *Repository) DeleteCourt(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM padel.court WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete court '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}
