package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

// NewPetRepo crea un repo de mascotas con su propio store.
func NewPetRepo() pets.Repository {
	return NewStore().Pets()
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkNew(p); err != nil {
		return err
	}
	r.s.pets[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range ps {
		if err := r.checkNew(p); err != nil {
			return err
		}
	}
	for _, p := range ps {
		r.s.pets[p.ID] = clonePet(p)
	}
	return nil
}

func (r *petRepo) checkNew(p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	return nil
}

func (r *petRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.pets[id]
	if !exists {
		return pets.Pet{}, pets.ErrNotFound
	}
	patch.Apply(&cur)
	r.s.pets[id] = cur
	return clonePet(cur), nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := r.s.pets[id]; ok {
			out = append(out, clonePet(p))
		}
	}
	return out, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(func(pets.Pet) bool { return true }), nil
}

func (r *petRepo) ListAdopted(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(func(p pets.Pet) bool { return p.Adopted && p.Owner != nil }), nil
}

func (r *petRepo) filter(keep func(pets.Pet) bool) []pets.Pet {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if keep(p) {
			out = append(out, clonePet(p))
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.pets, id)
	return nil
}

func (r *petRepo) SetAdoption(ctx context.Context, petID string, owner *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted == (owner != nil) {
		return pets.ErrAdoptionConflict
	}
	if owner != nil {
		o := *owner
		p.Owner = &o
	} else {
		p.Owner = nil
	}
	p.Adopted = owner != nil
	p.UpdatedAt = time.Now().UTC()
	r.s.pets[petID] = p
	return nil
}

func clonePet(p pets.Pet) pets.Pet {
	if p.Owner != nil {
		o := *p.Owner
		p.Owner = &o
	}
	if p.Image != nil {
		img := *p.Image
		p.Image = &img
	}
	return p
}
