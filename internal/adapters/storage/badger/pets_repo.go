package badger

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type PetsRepo struct {
	s *Store
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		return insertPet(txn, p)
	})
}

func (r *PetsRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		for _, p := range ps {
			if err := insertPet(txn, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertPet(txn *badger.Txn, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	taken, err := exists(txn, petKey(p.ID))
	if err != nil {
		return err
	}
	if taken {
		return errors.New("pet already exists")
	}
	return put(txn, petKey(p.ID), fromPet(p))
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var rec petRecord
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		return get(txn, petKey(id), &rec)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return rec.toDomain(), nil
}

func (r *PetsRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			var rec petRecord
			if err := get(txn, petKey(id), &rec); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			out = append(out, rec.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(ctx, func(pets.Pet) bool { return true })
}

func (r *PetsRepo) ListAdopted(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(ctx, func(p pets.Pet) bool { return p.Adopted && p.Owner != nil })
}

func (r *PetsRepo) filter(ctx context.Context, keep func(pets.Pet) bool) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		return scan(txn, petPrefix, func(val []byte) error {
			var rec petRecord
			if err := bson.Unmarshal(val, &rec); err != nil {
				return err
			}
			if p := rec.toDomain(); keep(p) {
				out = append(out, p)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortByCreated(out, func(p pets.Pet) time.Time { return p.CreatedAt }, func(p pets.Pet) string { return p.ID })
	return out, nil
}

// Update relee y escribe dentro de la misma txn; solo cambian los campos del
// patch.
func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	var out pets.Pet
	err := r.s.update(ctx, func(txn *badger.Txn) error {
		var cur petRecord
		if err := get(txn, petKey(id), &cur); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return pets.ErrNotFound
			}
			return err
		}
		p := cur.toDomain()
		patch.Apply(&p)
		out = p
		return put(txn, petKey(id), fromPet(p))
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return out, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		return txn.Delete(petKey(id))
	})
}

func (r *PetsRepo) SetAdoption(ctx context.Context, petID string, owner *string) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		var cur petRecord
		if err := get(txn, petKey(petID), &cur); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return pets.ErrNotFound
			}
			return err
		}
		if cur.Adopted == (owner != nil) {
			return pets.ErrAdoptionConflict
		}
		cur.Owner = owner
		cur.Adopted = owner != nil
		cur.UpdatedAt = time.Now().UTC()
		return put(txn, petKey(petID), cur)
	})
}
