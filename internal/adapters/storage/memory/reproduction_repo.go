package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"controle-leiteiro/internal/domain/reproduction"
)

type reproductionRepo struct {
	mu   sync.RWMutex
	byID map[string]reproduction.Event
}

func NewReproductionRepo() reproduction.Repository {
	return &reproductionRepo{
		byID: make(map[string]reproduction.Event),
	}
}

func (r *reproductionRepo) Create(ctx context.Context, e reproduction.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *reproductionRepo) Update(ctx context.Context, e reproduction.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; !exists {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *reproductionRepo) GetByID(ctx context.Context, id string) (reproduction.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return reproduction.Event{}, ErrNotFound
	}
	return e, nil
}

func (r *reproductionRepo) ListByOwner(ctx context.Context, ownerUserID string, filter reproduction.ListFilter) ([]reproduction.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reproduction.Event, 0)

	for _, e := range r.byID {
		if e.OwnerUserID != ownerUserID {
			continue
		}
		if filter.AnimalID != "" && e.AnimalID != filter.AnimalID {
			continue
		}

		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		out = append(out, e)
	}

	sortEventsDesc(out)

	// Limite <= 0 lista tudo; derivações de ciclo precisam do histórico
	// completo.
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *reproductionRepo) ListByAnimal(ctx context.Context, animalID string) ([]reproduction.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reproduction.Event, 0)
	for _, e := range r.byID {
		if e.AnimalID == animalID {
			out = append(out, e)
		}
	}

	sortEventsDesc(out)
	return out, nil
}

// Ordem pela data relevante do evento desc (mais recente primeiro);
// eventos sem data vão para o fim.
func sortEventsDesc(evs []reproduction.Event) {
	sort.SliceStable(evs, func(i, j int) bool {
		di, dj := evs[i].Date(), evs[j].Date()
		if di == nil || dj == nil {
			return dj == nil && di != nil
		}
		if !di.Equal(*dj) {
			return di.After(*dj)
		}
		return evs[i].CreatedAt.After(evs[j].CreatedAt)
	})
}
