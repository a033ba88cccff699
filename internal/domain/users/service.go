package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoptions/internal/platform/ids"
	"pet-adoptions/internal/platform/validate"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
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

// PetLookup resuelve ids de mascotas a resúmenes.
// Se define acá para no importar el paquete pets (rompe ciclos).
type PetLookup interface {
	PetsByID(ctx context.Context, ids []string) (map[string]PetSummary, error)
}

type Service struct {
	repo     Repository
	pets     PetLookup
	now      func() time.Time
	hashCost int
}

func NewService(repo Repository, pets PetLookup) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

type CreateInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      Role   `json:"role" validate:"omitempty,oneof=user admin"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	u, err := s.build(in)
	if err != nil {
		return User{}, wrap("creating user", err)
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, wrap("creating user", err)
	}
	return u, nil
}

// CreateMany inserta en bloque; si un registro es inválido no se inserta ninguno.
func (s *Service) CreateMany(ctx context.Context, in []CreateInput) ([]User, error) {
	out := make([]User, 0, len(in))
	for _, i := range in {
		u, err := s.build(i)
		if err != nil {
			return nil, wrap("creating users", err)
		}
		out = append(out, u)
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := s.repo.CreateMany(ctx, out); err != nil {
		return nil, wrap("creating users", err)
	}
	return out, nil
}

func (s *Service) build(in CreateInput) (User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = normalizeEmail(in.Email)
	if in.Role == "" {
		in.Role = RoleUser
	}
	if err := validate.Struct(in); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	return User{
		ID:        ids.New(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
		Role:      in.Role,
		Pets:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetByID devuelve ErrNotFound si no existe (incluye ids mal formados).
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if !ids.Valid(id) {
		return User{}, ErrNotFound
	}
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, wrap("fetching user", err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrap("fetching users", err)
	}
	return items, nil
}

// Resolve traduce user.pets a resúmenes con una sola consulta (sin N+1).
// Ids que ya no existen se omiten.
func (s *Service) Resolve(ctx context.Context, items []User) ([]Resolved, error) {
	out := make([]Resolved, 0, len(items))
	if s.pets == nil {
		for _, u := range items {
			out = append(out, Resolved{User: u})
		}
		return out, nil
	}

	seen := map[string]struct{}{}
	all := make([]string, 0)
	for _, u := range items {
		for _, id := range u.Pets {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			all = append(all, id)
		}
	}

	found := map[string]PetSummary{}
	if len(all) > 0 {
		var err error
		found, err = s.pets.PetsByID(ctx, all)
		if err != nil {
			return nil, wrap("resolving user pets", err)
		}
	}

	for _, u := range items {
		details := make([]PetSummary, 0, len(u.Pets))
		for _, id := range u.Pets {
			if p, ok := found[id]; ok {
				details = append(details, p)
			}
		}
		out = append(out, Resolved{User: u, PetDetails: details})
	}
	return out, nil
}

func (s *Service) ResolveOne(ctx context.Context, u User) (Resolved, error) {
	items, err := s.Resolve(ctx, []User{u})
	if err != nil {
		return Resolved{}, err
	}
	return items[0], nil
}

// UpdateInput: punteros para merge parcial, nil = no tocar.
type UpdateInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=1"`
	Role      *Role   `json:"role" validate:"omitempty,oneof=user admin"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := validate.Struct(in); err != nil {
		return User{}, wrap("updating user", fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := s.hashPassword(*in.Password)
		if err != nil {
			return User{}, wrap("updating user", err)
		}
		u.Password = hash
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, wrap("updating user", err)
	}

	// Releer para devolver la lista de pets vigente (pudo cambiar en paralelo).
	return s.GetByID(ctx, u.ID)
}

// Delete siempre reporta éxito si el store no falla, exista o no el usuario.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !ids.Valid(id) {
		return nil
	}
	return wrap("deleting user", s.repo.Delete(ctx, strings.TrimSpace(id)))
}

// hashPassword deja pasar valores que ya son hash bcrypt (p.ej. datos mock).
func (s *Service) hashPassword(p string) (string, error) {
	if _, err := bcrypt.Cost([]byte(p)); err == nil {
		return p, nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
