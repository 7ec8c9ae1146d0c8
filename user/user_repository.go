package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetUsers(ctx context.Context) ([]User, error) {
	sql := `
			SELECT id, name, email, password_hash, role, created_at
			FROM padel."user"
			ORDER BY id;
		`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	defer rows.Close()

	users := []User{}

	for rows.Next() {
		var user User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (User, error) {
	sql := `
			SELECT id, name, email, password_hash, role, created_at
			FROM padel."user"
			WHERE id=$1;
		`

	return r.getUser(ctx, sql, id)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `
			SELECT id, name, email, password_hash, role, created_at
			FROM padel."user"
			WHERE email=$1;
		`

	return r.getUser(ctx, sql, email)
}

func (r *Repository) getUser(ctx context.Context, sql string, arg any) (User, error) {
	var user User
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", arg, err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user User) (User, error) {
	sql := `
			INSERT INTO padel."user"(name, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) SetUserRole(ctx context.Context, id int64, role auth.Role) error {
	tag, err := r.pool.Exec(ctx, `UPDATE padel."user" SET role=$1 WHERE id=$2;`, role, id)

	if err != nil {
		return fmt.Errorf("failed to update user '%v' role: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM padel."user" WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete user '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
