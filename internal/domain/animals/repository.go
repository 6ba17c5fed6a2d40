package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Animal, error)
	Delete(ctx context.Context, id string) error

	// ListOwners devolve os ids de produtores com animais cadastrados.
	// Usado pelo job de resumo diário.
	ListOwners(ctx context.Context) ([]string, error)
}
