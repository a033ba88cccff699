package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoptions/internal/platform/ids"
	"pet-adoptions/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrAdoptionConflict: otra escritura cambió adopted antes que SetAdoption.
	ErrAdoptionConflict = errors.New("pet adoption state changed")
)

// StoreError envuelve cualquier fallo de la capa de datos con la operación que falló.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// OwnerLookup resuelve ids de usuarios a resúmenes (evita importar users).
type OwnerLookup interface {
	OwnersByID(ctx context.Context, ids []string) (map[string]OwnerSummary, error)
}

type Service struct {
	repo   Repository
	owners OwnerLookup
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerLookup) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name      string  `json:"name" validate:"required"`
	Specie    string  `json:"specie" validate:"required"`
	BirthDate *Date   `json:"birthDate" validate:"required"`
	Adopted   bool    `json:"adopted"`
	Owner     *string `json:"owner" validate:"omitempty,mongodb"`
	Image     *string `json:"image"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p, err := s.build(in)
	if err != nil {
		return Pet{}, wrap("creating pet", err)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, wrap("creating pet", err)
	}
	return p, nil
}

// CreateMany inserta en bloque; si un registro es inválido no se inserta ninguno.
func (s *Service) CreateMany(ctx context.Context, in []CreateInput) ([]Pet, error) {
	out := make([]Pet, 0, len(in))
	for _, i := range in {
		p, err := s.build(i)
		if err != nil {
			return nil, wrap("creating pets", err)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := s.repo.CreateMany(ctx, out); err != nil {
		return nil, wrap("creating pets", err)
	}
	return out, nil
}

func (s *Service) build(in CreateInput) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Specie = strings.TrimSpace(in.Specie)
	if in.Owner != nil {
		o := strings.TrimSpace(*in.Owner)
		in.Owner = &o
	}
	if err := validate.Struct(in); err != nil {
		return Pet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	return Pet{
		ID:        ids.New(),
		Name:      in.Name,
		Specie:    in.Specie,
		BirthDate: in.BirthDate.Time,
		Adopted:   in.Adopted,
		Owner:     in.Owner,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByID devuelve ErrNotFound si no existe (incluye ids mal formados).
func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if !ids.Valid(id) {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, wrap("fetching pet", err)
	}
	return p, nil
}

// GetMany ignora ids inexistentes; el orden del resultado no está garantizado.
func (s *Service) GetMany(ctx context.Context, petIDs []string) ([]Pet, error) {
	if len(petIDs) == 0 {
		return []Pet{}, nil
	}
	items, err := s.repo.GetMany(ctx, petIDs)
	if err != nil {
		return nil, wrap("fetching pets", err)
	}
	return items, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrap("fetching pets", err)
	}
	return items, nil
}

func (s *Service) ListAdopted(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.ListAdopted(ctx)
	if err != nil {
		return nil, wrap("fetching adopted pets", err)
	}
	return items, nil
}

// Resolve resuelve pet.owner con una sola consulta al store de usuarios.
func (s *Service) Resolve(ctx context.Context, items []Pet) ([]Resolved, error) {
	out := make([]Resolved, 0, len(items))
	if s.owners == nil {
		for _, p := range items {
			out = append(out, Resolved{Pet: p})
		}
		return out, nil
	}

	seen := map[string]struct{}{}
	ownerIDs := make([]string, 0)
	for _, p := range items {
		if p.Owner == nil {
			continue
		}
		if _, ok := seen[*p.Owner]; ok {
			continue
		}
		seen[*p.Owner] = struct{}{}
		ownerIDs = append(ownerIDs, *p.Owner)
	}

	found := map[string]OwnerSummary{}
	if len(ownerIDs) > 0 {
		var err error
		found, err = s.owners.OwnersByID(ctx, ownerIDs)
		if err != nil {
			return nil, wrap("resolving pet owners", err)
		}
	}

	for _, p := range items {
		r := Resolved{Pet: p}
		if p.Owner != nil {
			if o, ok := found[*p.Owner]; ok {
				o := o
				r.OwnerDetail = &o
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Service) ResolveOne(ctx context.Context, p Pet) (Resolved, error) {
	items, err := s.Resolve(ctx, []Pet{p})
	if err != nil {
		return Resolved{}, err
	}
	return items[0], nil
}

// UpdateInput: punteros para merge parcial, nil = no tocar.
// Owner/Image son Nullable para poder limpiarlos con null.
type UpdateInput struct {
	Name      *string
	Specie    *string
	BirthDate *Date
	Adopted   *bool
	Owner     Nullable
	Image     Nullable
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if !ids.Valid(id) {
		return Pet{}, ErrNotFound
	}

	patch := Patch{
		Adopted:   in.Adopted,
		Image:     in.Image,
		UpdatedAt: s.now(),
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return Pet{}, wrap("updating pet", fmt.Errorf("%w: name: field is required", ErrInvalidInput))
		}
		patch.Name = &n
	}
	if in.Specie != nil {
		sp := strings.TrimSpace(*in.Specie)
		if sp == "" {
			return Pet{}, wrap("updating pet", fmt.Errorf("%w: specie: field is required", ErrInvalidInput))
		}
		patch.Specie = &sp
	}
	if in.BirthDate != nil {
		bd := in.BirthDate.Time
		patch.BirthDate = &bd
	}
	if in.Owner.Present {
		if in.Owner.Value != nil && !ids.Valid(*in.Owner.Value) {
			return Pet{}, wrap("updating pet", fmt.Errorf("%w: owner: must be a valid id", ErrInvalidInput))
		}
		patch.Owner = in.Owner
	}

	p, err := s.repo.Update(ctx, strings.TrimSpace(id), patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, wrap("updating pet", err)
	}
	return p, nil
}

// Delete siempre reporta éxito si el store no falla, exista o no la mascota.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !ids.Valid(id) {
		return nil
	}
	return wrap("deleting pet", s.repo.Delete(ctx, strings.TrimSpace(id)))
}
