package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	CreateMany(ctx context.Context, us []User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetMany(ctx context.Context, ids []string) ([]User, error)
	List(ctx context.Context) ([]User, error)

	// Update reemplaza los campos de perfil (no toca Pets).
	Update(ctx context.Context, u User) error

	// Delete es idempotente: borrar algo inexistente no es error.
	Delete(ctx context.Context, id string) error

	AddPet(ctx context.Context, userID, petID string) error
	RemovePet(ctx context.Context, userID, petID string) error
}
