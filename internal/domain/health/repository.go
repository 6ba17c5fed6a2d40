package health

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
