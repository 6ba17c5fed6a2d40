package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"controle-leiteiro/internal/domain/alerts"
)

type alertRepo struct {
	mu sync.RWMutex
	// Resoluções indexadas por dono e id determinístico do alerta.
	byOwner map[string]map[string]alerts.Resolution
}

func NewAlertRepo() alerts.Repository {
	return &alertRepo{
		byOwner: make(map[string]map[string]alerts.Resolution),
	}
}

func (r *alertRepo) Upsert(ctx context.Context, res alerts.Resolution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" || res.OwnerUserID == "" {
		return errors.New("resolution id and owner required")
	}

	owned, ok := r.byOwner[res.OwnerUserID]
	if !ok {
		owned = make(map[string]alerts.Resolution)
		r.byOwner[res.OwnerUserID] = owned
	}
	owned[res.ID] = res
	return nil
}

func (r *alertRepo) GetByID(ctx context.Context, ownerUserID, id string) (alerts.Resolution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byOwner[ownerUserID][id]
	if !ok {
		return alerts.Resolution{}, ErrNotFound
	}
	return res, nil
}

func (r *alertRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]alerts.Resolution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]alerts.Resolution, 0)
	for _, res := range r.byOwner[ownerUserID] {
		out = append(out, res)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
