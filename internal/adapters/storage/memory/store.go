package memory

import (
	"sync"

	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

// Store agrupa las dos colecciones en memoria (dev/tests).
// Cada operación es atómica por documento; no hay transacciones entre
// colecciones, así que el transactor es adoptions.Sequential.
type Store struct {
	mu    sync.RWMutex
	users map[string]users.User
	pets  map[string]pets.Pet
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]users.User),
		pets:  make(map[string]pets.Pet),
	}
}

func (s *Store) Users() users.Repository { return &userRepo{s: s} }

func (s *Store) Pets() pets.Repository { return &petRepo{s: s} }

func (s *Store) Transactor() adoptions.Transactor { return adoptions.Sequential{} }
