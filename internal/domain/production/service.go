package production

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	AnimalID string
	Date     time.Time
	Period   Period
	Quantity float64
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(in.AnimalID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}
	if !ValidPeriod(in.Period) {
		return Record{}, ErrInvalidInput
	}
	if in.Quantity < 0 {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		AnimalID:    strings.TrimSpace(in.AnimalID),
		Date:        in.Date,
		Period:      in.Period,
		Quantity:    in.Quantity,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}
