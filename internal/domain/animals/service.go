package animals

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
	Number          string
	Name            string
	Breed           string
	BirthDate       *time.Time
	Status          Status
	NextCalvingDate *time.Time
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Number) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusLactante
	}
	if !ValidStatus(status) {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	a := Animal{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Number:          strings.TrimSpace(in.Number),
		Name:            strings.TrimSpace(in.Name),
		Breed:           strings.TrimSpace(in.Breed),
		BirthDate:       in.BirthDate,
		Status:          status,
		NextCalvingDate: in.NextCalvingDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Animal, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListOwners(ctx context.Context) ([]string, error) {
	return s.repo.ListOwners(ctx)
}

// OptionalDate diferencia "campo não enviado" de "campo enviado como null"
// em updates parciais.
type OptionalDate struct {
	Present bool
	Value   *time.Time
}

type UpdateInput struct {
	Number          *string
	Name            *string
	Breed           *string
	Status          *Status
	BirthDate       OptionalDate
	NextCalvingDate OptionalDate
}

func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateInput) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if a.OwnerUserID != ownerUserID {
		return Animal{}, ErrNotFound
	}

	if in.Number != nil {
		if strings.TrimSpace(*in.Number) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Number = strings.TrimSpace(*in.Number)
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return Animal{}, ErrInvalidInput
		}
		a.Status = *in.Status
	}
	if in.BirthDate.Present {
		a.BirthDate = in.BirthDate.Value
	}
	if in.NextCalvingDate.Present {
		a.NextCalvingDate = in.NextCalvingDate.Value
	}

	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerUserID string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SetStatus aplica a transição de status disparada por um evento
// reprodutivo. Reaplicar a mesma transição não altera nada.
func (s *Service) SetStatus(ctx context.Context, id string, status Status, nextCalving OptionalDate) (Animal, error) {
	if !ValidStatus(status) {
		return Animal{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	changed := false
	if a.Status != status {
		a.Status = status
		changed = true
	}
	if nextCalving.Present && !sameDate(a.NextCalvingDate, nextCalving.Value) {
		a.NextCalvingDate = nextCalving.Value
		changed = true
	}
	if !changed {
		return a, nil
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
