package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"
)

type userRepo struct {
	s *Store
}

// NewUserRepo crea un repo de usuarios con su propio store.
func NewUserRepo() users.Repository {
	return NewStore().Users()
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkNew(u, nil); err != nil {
		return err
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

// CreateMany valida todo el lote antes de insertar.
func (r *userRepo) CreateMany(ctx context.Context, us []users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	batch := make(map[string]struct{}, len(us))
	for _, u := range us {
		if err := r.checkNew(u, batch); err != nil {
			return err
		}
		batch[u.Email] = struct{}{}
	}
	for _, u := range us {
		r.s.users[u.ID] = cloneUser(u)
	}
	return nil
}

func (r *userRepo) checkNew(u users.User, batch map[string]struct{}) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.s.users[u.ID]; exists {
		return errors.New("user already exists")
	}
	if _, dup := batch[u.Email]; dup {
		return users.ErrDuplicateEmail
	}
	if r.emailTaken(u.Email, "") {
		return users.ErrDuplicateEmail
	}
	return nil
}

func (r *userRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.s.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetMany(ctx context.Context, ids []string) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if u, ok := r.s.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.users[u.ID]
	if !exists {
		return users.ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return users.ErrDuplicateEmail
	}

	cur.FirstName = u.FirstName
	cur.LastName = u.LastName
	cur.Email = u.Email
	cur.Password = u.Password
	cur.Role = u.Role
	cur.UpdatedAt = u.UpdatedAt
	r.s.users[u.ID] = cur
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.users, id)
	return nil
}

// AddPet agrega al final; si ya estaba no lo duplica.
func (r *userRepo) AddPet(ctx context.Context, userID, petID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return users.ErrNotFound
	}
	for _, id := range u.Pets {
		if id == petID {
			return nil
		}
	}
	u.Pets = append(append([]string{}, u.Pets...), petID)
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

// RemovePet quita todas las apariciones de petID.
func (r *userRepo) RemovePet(ctx context.Context, userID, petID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return users.ErrNotFound
	}
	out := make([]string, 0, len(u.Pets))
	for _, id := range u.Pets {
		if id != petID {
			out = append(out, id)
		}
	}
	u.Pets = out
	u.UpdatedAt = time.Now().UTC()
	r.s.users[userID] = u
	return nil
}

func cloneUser(u users.User) users.User {
	pets := make([]string, len(u.Pets))
	copy(pets, u.Pets)
	u.Pets = pets
	return u
}
