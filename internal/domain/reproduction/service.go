package reproduction

import (
	"context"
	"errors"
	"strings"
	"time"

	"controle-leiteiro/internal/domain/animals"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo       Repository
	animalsSvc *animals.Service
	now        func() time.Time
}

func NewService(repo Repository, animalsSvc *animals.Service) *Service {
	return &Service{
		repo:       repo,
		animalsSvc: animalsSvc,
		now:        time.Now,
	}
}

// Snapshot é a foto imutável sobre a qual as funções puras do núcleo
// (indicadores, ações pendentes, ciclo) rodam. Quem escreve um evento
// descarta o snapshot e recarrega.
type Snapshot struct {
	Animals []animals.Animal
	Events  []Event
}

func (s *Service) LoadSnapshot(ctx context.Context, ownerUserID string) (Snapshot, error) {
	herd, err := s.animalsSvc.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Snapshot{}, err
	}
	evs, err := s.repo.ListByOwner(ctx, ownerUserID, ListFilter{})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Animals: herd, Events: evs}, nil
}

func (s *Service) Indicators(ctx context.Context, ownerUserID string, today time.Time) (Indicators, error) {
	snap, err := s.LoadSnapshot(ctx, ownerUserID)
	if err != nil {
		return Indicators{}, err
	}
	return CalculateIndicators(snap.Animals, snap.Events, today), nil
}

func (s *Service) Actions(ctx context.Context, ownerUserID string, today time.Time) ([]PendingAction, error) {
	snap, err := s.LoadSnapshot(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	return PendingActions(snap.Animals, snap.Events, today), nil
}

func (s *Service) CycleState(ctx context.Context, ownerUserID, animalID string) (CycleState, error) {
	a, err := s.animalsSvc.GetByID(ctx, animalID)
	if err != nil || a.OwnerUserID != ownerUserID {
		return CycleState{}, ErrNotFound
	}
	evs, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return CycleState{}, err
	}
	return DeriveCycleState(a, evs), nil
}

type CreateEventInput struct {
	AnimalID string
	Type     EventType

	InseminationDate *time.Time
	Bull             string
	Technician       string
	Protocol         string

	DiagnosisDate   *time.Time
	DiagnosisResult DiagnosisResult

	CalvingDate *time.Time
	DryingDate  *time.Time

	Notes string
}

// Create registra um evento reprodutivo e aplica os efeitos colaterais
// do contrato de escrita: inseminação projeta a data prevista do parto
// (+280 dias) no evento e no animal; diagnóstico prenhe muda o animal
// para prenhe; parto muda para lactante e limpa a data prevista;
// secagem muda para seca. Transições são idempotentes.
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateEventInput) (Event, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(in.AnimalID) == "" {
		return Event{}, ErrInvalidInput
	}
	if !ValidEventType(in.Type) {
		return Event{}, ErrInvalidInput
	}

	a, err := s.animalsSvc.GetByID(ctx, in.AnimalID)
	if err != nil || a.OwnerUserID != ownerUserID {
		return Event{}, ErrNotFound
	}

	now := s.now()
	e := Event{
		ID:          uuid.NewString(),
		AnimalID:    in.AnimalID,
		OwnerUserID: ownerUserID,
		Type:        in.Type,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch in.Type {
	case EventTypeInseminacao:
		if in.InseminationDate == nil {
			return Event{}, ErrInvalidInput
		}
		expected := ExpectedCalving(*in.InseminationDate)
		e.InseminationDate = in.InseminationDate
		e.Bull = strings.TrimSpace(in.Bull)
		e.Technician = strings.TrimSpace(in.Technician)
		e.Protocol = strings.TrimSpace(in.Protocol)
		e.ExpectedCalvingDate = &expected
		e.Status = EventStatusPendente

	case EventTypeDiagnostico:
		if in.DiagnosisDate == nil {
			return Event{}, ErrInvalidInput
		}
		if in.DiagnosisResult != DiagnosisPrenhe && in.DiagnosisResult != DiagnosisVazia {
			return Event{}, ErrInvalidInput
		}
		e.DiagnosisDate = in.DiagnosisDate
		e.DiagnosisResult = in.DiagnosisResult
		e.Status = EventStatus(in.DiagnosisResult)

		// Amarra o diagnóstico ao ciclo aberto: copia a data da IA (para
		// o período de serviço) e, se prenhe, a data prevista do parto
		// (para a regra de secagem).
		evs, err := s.repo.ListByAnimal(ctx, in.AnimalID)
		if err != nil {
			return Event{}, err
		}
		cycle := DeriveCycleState(a, evs)
		if cycle.OpenInsemination != nil {
			e.InseminationDate = cycle.OpenInsemination.InseminationDate
			if in.DiagnosisResult == DiagnosisPrenhe {
				e.ExpectedCalvingDate = cycle.OpenInsemination.ExpectedCalvingDate
			}
		}

	case EventTypeParto:
		if in.CalvingDate == nil {
			return Event{}, ErrInvalidInput
		}
		e.CalvingDate = in.CalvingDate
		e.Status = EventStatusParto

	case EventTypeSecagem:
		if in.DryingDate == nil {
			return Event{}, ErrInvalidInput
		}
		e.DryingDate = in.DryingDate
		e.Status = EventStatusSeca
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}

	if err := s.applySideEffects(ctx, a, e); err != nil {
		return Event{}, err
	}

	return e, nil
}

func (s *Service) applySideEffects(ctx context.Context, a animals.Animal, e Event) error {
	switch e.Type {
	case EventTypeInseminacao:
		_, err := s.animalsSvc.SetStatus(ctx, a.ID, a.Status, animals.OptionalDate{
			Present: true,
			Value:   e.ExpectedCalvingDate,
		})
		return err
	case EventTypeDiagnostico:
		if e.DiagnosisResult != DiagnosisPrenhe {
			return nil
		}
		_, err := s.animalsSvc.SetStatus(ctx, a.ID, animals.StatusPrenhe, animals.OptionalDate{})
		return err
	case EventTypeParto:
		_, err := s.animalsSvc.SetStatus(ctx, a.ID, animals.StatusLactante, animals.OptionalDate{Present: true})
		return err
	case EventTypeSecagem:
		_, err := s.animalsSvc.SetStatus(ctx, a.ID, animals.StatusSeca, animals.OptionalDate{})
		return err
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Event, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}

type UpdateEventInput struct {
	InseminationDate *time.Time
	Bull             *string
	Technician       *string
	Protocol         *string

	DiagnosisDate   *time.Time
	DiagnosisResult *DiagnosisResult

	CalvingDate *time.Time
	DryingDate  *time.Time

	Notes *string
}

// Update edita um evento existente. Só os campos do tipo do evento são
// considerados. Editar a data da inseminação recalcula a data prevista
// do parto e ressincroniza o animal.
func (s *Service) Update(ctx context.Context, id, ownerUserID string, in UpdateEventInput) (Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if e.OwnerUserID != ownerUserID {
		return Event{}, ErrNotFound
	}

	a, err := s.animalsSvc.GetByID(ctx, e.AnimalID)
	if err != nil {
		return Event{}, err
	}

	resync := false

	switch e.Type {
	case EventTypeInseminacao:
		if in.InseminationDate != nil && (e.InseminationDate == nil || !in.InseminationDate.Equal(*e.InseminationDate)) {
			expected := ExpectedCalving(*in.InseminationDate)
			e.InseminationDate = in.InseminationDate
			e.ExpectedCalvingDate = &expected
			resync = true
		}
		if in.Bull != nil {
			e.Bull = strings.TrimSpace(*in.Bull)
		}
		if in.Technician != nil {
			e.Technician = strings.TrimSpace(*in.Technician)
		}
		if in.Protocol != nil {
			e.Protocol = strings.TrimSpace(*in.Protocol)
		}

	case EventTypeDiagnostico:
		if in.DiagnosisDate != nil {
			e.DiagnosisDate = in.DiagnosisDate
		}
		if in.DiagnosisResult != nil {
			if *in.DiagnosisResult != DiagnosisPrenhe && *in.DiagnosisResult != DiagnosisVazia {
				return Event{}, ErrInvalidInput
			}
			e.DiagnosisResult = *in.DiagnosisResult
			e.Status = EventStatus(e.DiagnosisResult)
		}

	case EventTypeParto:
		if in.CalvingDate != nil {
			e.CalvingDate = in.CalvingDate
		}

	case EventTypeSecagem:
		if in.DryingDate != nil {
			e.DryingDate = in.DryingDate
		}
	}

	if in.Notes != nil {
		e.Notes = strings.TrimSpace(*in.Notes)
	}

	e.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}

	if resync {
		if _, err := s.animalsSvc.SetStatus(ctx, a.ID, a.Status, animals.OptionalDate{
			Present: true,
			Value:   e.ExpectedCalvingDate,
		}); err != nil {
			return Event{}, err
		}
	}

	return e, nil
}
