package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	CreateMany(ctx context.Context, ps []Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	GetMany(ctx context.Context, ids []string) ([]Pet, error)
	List(ctx context.Context) ([]Pet, error)

	// ListAdopted devuelve las mascotas con adopted=true y owner no nulo.
	ListAdopted(ctx context.Context) ([]Pet, error)

	// Update escribe solo los campos presentes en patch y devuelve la mascota
	// resultante. ErrNotFound si no existe.
	Update(ctx context.Context, id string, patch Patch) (Pet, error)

	// Delete es idempotente.
	Delete(ctx context.Context, id string) error

	// SetAdoption fija owner y adopted=(owner != nil) en una sola escritura
	// condicional: adoptar exige adopted=false y liberar exige adopted=true.
	// Si la condición no se cumple devuelve ErrAdoptionConflict.
	SetAdoption(ctx context.Context, petID string, owner *string) error
}
