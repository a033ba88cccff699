package router

import (
	"context"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

// petLookup implementa users.PetLookup sobre el repo de mascotas.
type petLookup struct {
	repo pets.Repository
}

func (l petLookup) PetsByID(ctx context.Context, ids []string) (map[string]users.PetSummary, error) {
	items, err := l.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]users.PetSummary, len(items))
	for _, p := range items {
		out[p.ID] = users.PetSummary{
			ID:        p.ID,
			Name:      p.Name,
			Specie:    p.Specie,
			BirthDate: p.BirthDate,
			Adopted:   p.Adopted,
			Image:     p.Image,
		}
	}
	return out, nil
}

// ownerLookup implementa pets.OwnerLookup sobre el repo de usuarios.
type ownerLookup struct {
	repo users.Repository
}

func (l ownerLookup) OwnersByID(ctx context.Context, ids []string) (map[string]pets.OwnerSummary, error) {
	items, err := l.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]pets.OwnerSummary, len(items))
	for _, u := range items {
		out[u.ID] = pets.OwnerSummary{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      string(u.Role),
		}
	}
	return out, nil
}
