package mocks

import (
	"context"
	"errors"
	"fmt"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

var ErrInvalidCount = errors.New(`"users" and "pets" must be non-negative integers`)

// UserCreator: *users.Service lo cumple.
type UserCreator interface {
	CreateMany(ctx context.Context, in []users.CreateInput) ([]users.User, error)
}

// PetCreator: *pets.Service lo cumple.
type PetCreator interface {
	CreateMany(ctx context.Context, in []pets.CreateInput) ([]pets.Pet, error)
}

// Result resume una generación persistida.
type Result struct {
	UsersCreated int
	PetsCreated  int
	Users        []users.User
	Pets         []pets.Pet
}

type Service struct {
	gen   *Generator
	users UserCreator
	pets  PetCreator
}

func NewService(gen *Generator, us UserCreator, ps PetCreator) *Service {
	return &Service{gen: gen, users: us, pets: ps}
}

// Pets genera n mascotas sin persistir.
func (s *Service) Pets(n int) ([]pets.CreateInput, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	return s.gen.Pets(n), nil
}

// Users genera n usuarios sin persistir.
func (s *Service) Users(n int) ([]users.CreateInput, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	return s.gen.Users(n)
}

// Generate genera y guarda primero los usuarios y después las mascotas.
// Si falla la segunda inserción los usuarios ya quedaron guardados.
func (s *Service) Generate(ctx context.Context, nUsers, nPets int) (Result, error) {
	if nUsers < 0 || nPets < 0 {
		return Result{}, ErrInvalidCount
	}

	res := Result{
		Users: []users.User{},
		Pets:  []pets.Pet{},
	}

	if nUsers > 0 {
		in, err := s.gen.Users(nUsers)
		if err != nil {
			return Result{}, err
		}
		created, err := s.users.CreateMany(ctx, in)
		if err != nil {
			return Result{}, fmt.Errorf("generate users: %w", err)
		}
		res.Users = created
		res.UsersCreated = len(created)
	}

	if nPets > 0 {
		created, err := s.pets.CreateMany(ctx, s.gen.Pets(nPets))
		if err != nil {
			return Result{}, fmt.Errorf("generate pets: %w", err)
		}
		res.Pets = created
		res.PetsCreated = len(created)
	}

	return res, nil
}
