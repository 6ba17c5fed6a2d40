package production

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Record, error)
}

type ListFilter struct {
	AnimalID string
	From     *time.Time
	To       *time.Time
	Limit    int
}
