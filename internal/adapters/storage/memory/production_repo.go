package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"controle-leiteiro/internal/domain/production"
)

type productionRepo struct {
	mu   sync.RWMutex
	byID map[string]production.Record
}

func NewProductionRepo() production.Repository {
	return &productionRepo{
		byID: make(map[string]production.Record),
	}
}

func (r *productionRepo) Create(ctx context.Context, rec production.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *productionRepo) ListByOwner(ctx context.Context, ownerUserID string, filter production.ListFilter) ([]production.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]production.Record, 0)

	for _, rec := range r.byID {
		if rec.OwnerUserID != ownerUserID {
			continue
		}
		if filter.AnimalID != "" && rec.AnimalID != filter.AnimalID {
			continue
		}
		if filter.From != nil {
			if rec.Date.Before((*filter.From).Add(-1 * time.Nanosecond)) {
				continue
			}
		}
		if filter.To != nil {
			if rec.Date.After(*filter.To) {
				continue
			}
		}
		out = append(out, rec)
	}

	// Ordem por data desc; dentro do mesmo dia, pelo registro mais novo
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	// Limite <= 0 lista tudo; os alertas de queda de produção varrem o
	// histórico completo por animal.
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}
