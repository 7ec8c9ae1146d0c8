package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_repository.go -package=mocks

const minPasswordLength = 8

type UserRepository interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	InsertUser(ctx context.Context, user User) (User, error)
	SetUserRole(ctx context.Context, id int64, role auth.Role) error
	DeleteUser(ctx context.Context, id int64) error
}

type TokenIssuer interface {
	Issue(principal auth.Principal) (string, error)
}

type Service struct {
	repo       UserRepository
	tokens     TokenIssuer
	principals *cache.Cache
}

func NewService(repo UserRepository, tokens TokenIssuer) *Service {
	return &Service{
		repo:       repo,
		tokens:     tokens,
		principals: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (s *Service) Register(ctx context.Context, registration Registration) (User, error) {
	name := strings.TrimSpace(registration.Name)
	email := strings.ToLower(strings.TrimSpace(registration.Email))

	if len(name) == 0 {
		return User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidUser)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email", ErrInvalidUser)
	}

	if len(registration.Password) < minPasswordLength {
		return User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUser, minPasswordLength)
	}

	hash, err := auth.HashPassword(registration.Password)

	if err != nil {
		return User{}, err
	}

	return s.repo.InsertUser(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleUser,
	})
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}

	if err != nil {
		return Session{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Principal())

	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, User: user}, nil
}

func (s *Service) GetUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetUsers(ctx)
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) SetUserRole(ctx context.Context, id int64, role auth.Role) error {
	if _, err := auth.ParseRole(string(role)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	if err := s.repo.SetUserRole(ctx, id, role); err != nil {
		return err
	}

	s.principals.Delete(cacheKey(id))

	return nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.principals.Delete(cacheKey(id))

	return nil
}

// ResolvePrincipal returns the current identity and role of a user, so a
// token issued before a demotion or deletion stops granting access once
// the cached entry expires.
func (s *Service) ResolvePrincipal(ctx context.Context, id int64) (auth.Principal, error) {
	if cached, found := s.principals.Get(cacheKey(id)); found {
		return cached.(auth.Principal), nil
	}

	user, err := s.repo.GetUserByID(ctx, id)

	if err != nil {
		return auth.Principal{}, err
	}

	principal := user.Principal()
	s.principals.Set(cacheKey(id), principal, cache.DefaultExpiration)

	return principal, nil
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
