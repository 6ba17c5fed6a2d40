package alerts

import (
	"context"
	"errors"
	"strings"
	"time"

	"controle-leiteiro/internal/domain/animals"
	"controle-leiteiro/internal/domain/health"
	"controle-leiteiro/internal/domain/production"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service monta o snapshot a partir dos outros módulos e delega o
// cálculo a BuildAlerts. Só as resoluções são estado próprio.
type Service struct {
	repo          Repository
	animalsSvc    *animals.Service
	productionSvc *production.Service
	healthSvc     *health.Service
	now           func() time.Time
}

func NewService(repo Repository, animalsSvc *animals.Service, productionSvc *production.Service, healthSvc *health.Service) *Service {
	return &Service{
		repo:          repo,
		animalsSvc:    animalsSvc,
		productionSvc: productionSvc,
		healthSvc:     healthSvc,
		now:           time.Now,
	}
}

// List recomputa os alertas do produtor relativos à data informada.
func (s *Service) List(ctx context.Context, ownerUserID string, today time.Time) ([]Alert, error) {
	herd, err := s.animalsSvc.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	// Limite zero lista tudo; os alertas de produção precisam do
	// histórico completo por animal.
	milk, err := s.productionSvc.ListByOwner(ctx, ownerUserID, production.ListFilter{})
	if err != nil {
		return nil, err
	}

	sanitary, err := s.healthSvc.ListByOwner(ctx, ownerUserID, 0)
	if err != nil {
		return nil, err
	}

	resolutions, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	return BuildAlerts(herd, milk, sanitary, resolutions, today), nil
}

// Resolve marca o alerta como resolvido pelo id determinístico. Não
// exige que o alerta exista na recomputação atual: resolver um alerta
// que acabou de sumir da lista é inofensivo.
func (s *Service) Resolve(ctx context.Context, ownerUserID, alertID string) (Resolution, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(alertID) == "" {
		return Resolution{}, ErrInvalidInput
	}

	res := Resolution{
		ID:          strings.TrimSpace(alertID),
		OwnerUserID: ownerUserID,
		Resolved:    true,
		ResolvedAt:  s.now(),
	}
	if err := s.repo.Upsert(ctx, res); err != nil {
		return Resolution{}, err
	}
	return res, nil
}
