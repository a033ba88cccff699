package adoptions

import (
	"context"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

// UserStore es lo mínimo que adoptions necesita del store de usuarios.
// users.Repository lo cumple.
type UserStore interface {
	GetByID(ctx context.Context, id string) (users.User, error)
	AddPet(ctx context.Context, userID, petID string) error
	RemovePet(ctx context.Context, userID, petID string) error
}

// PetStore: pets.Repository lo cumple.
type PetStore interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	GetMany(ctx context.Context, ids []string) ([]pets.Pet, error)
	ListAdopted(ctx context.Context) ([]pets.Pet, error)
	SetAdoption(ctx context.Context, petID string, owner *string) error
}

// Transactor ejecuta fn como una unidad. Los stores usados dentro de fn
// deben recibir el ctx que fn recibe para participar de la transacción.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Sequential no abre transacción: las escrituras quedan aplicadas aunque
// una posterior falle. Es el comportamiento del backend en memoria.
type Sequential struct{}

func (Sequential) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
