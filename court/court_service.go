package court

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=court_service.go -destination=mocks/mock_court_repository.go -package=mocks

type CourtRepository interface {
	GetCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int64) (Court, error)
	InsertCourt(ctx context.Context, court Court) (Court, error)
	UpdateCourt(ctx context.Context, court Court) error
	DeleteCourt(ctx context.Context, id int64) error
}

type Service struct {
	repo CourtRepository
}

func NewService(repo CourtRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCourts(ctx context.Context) ([]Court, error) {
	return s.repo.GetCourts(ctx)
}

func (s *Service) GetCourtByID(ctx context.Context, id int64) (Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *Service) CreateCourt(ctx context.Context, court Court) (Court, error) {
	court, err := normalize(court)

	if err != nil {
		return Court{}, err
	}

	return s.repo.InsertCourt(ctx, court)
}

func (s *Service) UpdateCourt(ctx context.Context, court Court) (Court, error) {
	court, err := normalize(court)

	if err != nil {
		return Court{}, err
	}

	existing, err := s.repo.GetCourtByID(ctx, court.ID)

	if err != nil {
		return Court{}, err
	}

	court.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateCourt(ctx, court); err != nil {
		return Court{}, err
	}

	return court, nil
}

func (s *Service) DeleteCourt(ctx context.Context, id int64) error {
	return s.repo.DeleteCourt(ctx, id)
}

func normalize(court Court) (Court, error) {
	court.Name = strings.TrimSpace(court.Name)

	if len(court.Name) == 0 {
		return Court{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidCourt)
	}

	if court.Price < 0 {
		return Court{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidCourt)
	}

	if court.TimeSlots == nil {
		court.TimeSlots = []string{}
	}

	return court, nil
}
