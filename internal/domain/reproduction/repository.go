package reproduction

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Event, error)
	ListByAnimal(ctx context.Context, animalID string) ([]Event, error)
}

type ListFilter struct {
	AnimalID string
	Types    []EventType
	Limit    int
}
