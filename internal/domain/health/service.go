package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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
	AnimalID        string
	VaccineName     string
	ApplicationDate time.Time
	Dose            string
	NextDose        *time.Time
	Notes           string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(in.AnimalID) == "" {
		return Record{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.VaccineName) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.ApplicationDate.IsZero() {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		AnimalID:        strings.TrimSpace(in.AnimalID),
		VaccineName:     strings.TrimSpace(in.VaccineName),
		ApplicationDate: in.ApplicationDate,
		Dose:            strings.TrimSpace(in.Dose),
		NextDose:        in.NextDose,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, limit)
}

func (s *Service) Delete(ctx context.Context, id, ownerUserID string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
