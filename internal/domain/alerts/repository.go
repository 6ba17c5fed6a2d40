package alerts

import "context"

// Repository persiste apenas as resoluções; os alertas em si são
// recomputados a cada leitura.
type Repository interface {
	Upsert(ctx context.Context, res Resolution) error
	GetByID(ctx context.Context, ownerUserID, id string) (Resolution, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Resolution, error)
}
