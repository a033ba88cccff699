package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/ids"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/platform/metrics"
)

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrUserNotFound     = errors.New("user not found")
	ErrPetNotFound      = errors.New("pet not found")
	ErrAlreadyAdopted   = errors.New("pet already adopted")
	ErrNotOwned         = errors.New("this pet was not adopted by this user")
	ErrAdoptionNotFound = errors.New("adoption not found")
)

// StoreError envuelve fallos de escritura/lectura. Si Op es una escritura de
// adopción, la primera escritura pudo haber quedado aplicada.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Result es el par mascota/usuario después de adoptar o cancelar.
type Result struct {
	Pet  pets.Pet
	User users.User
}

// Service mantiene consistentes pet.adopted/pet.owner y user.pets.
type Service struct {
	users UserStore
	pets  PetStore
	tx    Transactor
	log   logger.Logger
}

func NewService(us UserStore, ps PetStore, tx Transactor, log logger.Logger) *Service {
	if tx == nil {
		tx = Sequential{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		users: us,
		pets:  ps,
		tx:    tx,
		log:   log,
	}
}

// Adopt marca la mascota como adoptada por userID y la agrega a user.pets.
// Orden: primero la mascota, después el usuario.
func (s *Service) Adopt(ctx context.Context, userID, petID string) (Result, error) {
	res, err := s.adopt(ctx, strings.TrimSpace(userID), strings.TrimSpace(petID))
	metrics.ObserveAdoption("adopt", outcome(err))
	return res, err
}

func (s *Service) adopt(ctx context.Context, userID, petID string) (Result, error) {
	if !ids.Valid(userID) || !ids.Valid(petID) {
		return Result{}, ErrInvalidID
	}
	if _, err := s.loadUser(ctx, userID); err != nil {
		return Result{}, err
	}
	pet, err := s.loadPet(ctx, petID)
	if err != nil {
		return Result{}, err
	}
	if pet.Adopted {
		return Result{}, ErrAlreadyAdopted
	}

	owner := userID
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Re-chequeo para fallar antes de escribir. No alcanza solo: bajo
		// READ COMMITTED dos Adopt pueden pasarlo a la vez. Lo que decide es
		// la escritura condicional de SetAdoption (adopted=false en el WHERE).
		current, err := s.loadPet(ctx, petID)
		if err != nil {
			return err
		}
		if current.Adopted {
			return ErrAlreadyAdopted
		}

		if err := s.pets.SetAdoption(ctx, petID, &owner); err != nil {
			if errors.Is(err, pets.ErrAdoptionConflict) {
				return ErrAlreadyAdopted
			}
			return fmt.Errorf("update pet: %w", err)
		}
		if err := s.users.AddPet(ctx, userID, petID); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return Result{}, err
		}
		s.log.Error("adoption write failed; pet and user may be inconsistent", map[string]any{
			"user_id": userID,
			"pet_id":  petID,
			"err":     err,
		})
		return Result{}, &StoreError{Op: "creating adoption", Err: err}
	}

	s.log.Info("adoption created", map[string]any{"user_id": userID, "pet_id": petID})
	return s.reload(ctx, userID, petID)
}

// Cancel revierte una adopción. Solo el dueño actual puede cancelarla.
func (s *Service) Cancel(ctx context.Context, userID, petID string) (Result, error) {
	res, err := s.cancel(ctx, strings.TrimSpace(userID), strings.TrimSpace(petID))
	metrics.ObserveAdoption("cancel", outcome(err))
	return res, err
}

func (s *Service) cancel(ctx context.Context, userID, petID string) (Result, error) {
	if !ids.Valid(userID) || !ids.Valid(petID) {
		return Result{}, ErrInvalidID
	}
	if _, err := s.loadUser(ctx, userID); err != nil {
		return Result{}, err
	}
	pet, err := s.loadPet(ctx, petID)
	if err != nil {
		return Result{}, err
	}
	if !pet.IsAdoptedBy(userID) {
		return Result{}, ErrNotOwned
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.loadPet(ctx, petID)
		if err != nil {
			return err
		}
		if !current.IsAdoptedBy(userID) {
			return ErrNotOwned
		}

		if err := s.pets.SetAdoption(ctx, petID, nil); err != nil {
			if errors.Is(err, pets.ErrAdoptionConflict) {
				return ErrNotOwned
			}
			return fmt.Errorf("update pet: %w", err)
		}
		if err := s.users.RemovePet(ctx, userID, petID); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return Result{}, err
		}
		s.log.Error("adoption cancel failed; pet and user may be inconsistent", map[string]any{
			"user_id": userID,
			"pet_id":  petID,
			"err":     err,
		})
		return Result{}, &StoreError{Op: "cancelling adoption", Err: err}
	}

	s.log.Info("adoption cancelled", map[string]any{"user_id": userID, "pet_id": petID})
	return s.reload(ctx, userID, petID)
}

// List devuelve las mascotas con adopted=true y owner no nulo.
// Confía en el registro de la mascota; no verifica user.pets.
func (s *Service) List(ctx context.Context) ([]pets.Pet, error) {
	items, err := s.pets.ListAdopted(ctx)
	if err != nil {
		return nil, &StoreError{Op: "fetching adoptions", Err: err}
	}
	return items, nil
}

// Get devuelve la mascota petID si está adoptada.
func (s *Service) Get(ctx context.Context, petID string) (pets.Pet, error) {
	petID = strings.TrimSpace(petID)
	if !ids.Valid(petID) {
		return pets.Pet{}, ErrInvalidID
	}
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return pets.Pet{}, ErrAdoptionNotFound
		}
		return pets.Pet{}, &StoreError{Op: "fetching adoption", Err: err}
	}
	if !p.Adopted {
		return pets.Pet{}, ErrAdoptionNotFound
	}
	return p, nil
}

// ListForUser resuelve user.pets a mascotas adoptadas, en el orden guardado.
// Usa una sola consulta por lote en lugar de una por id.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]pets.Pet, error) {
	userID = strings.TrimSpace(userID)
	if !ids.Valid(userID) {
		return nil, ErrInvalidID
	}
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(u.Pets))
	if len(u.Pets) == 0 {
		return out, nil
	}

	items, err := s.pets.GetMany(ctx, u.Pets)
	if err != nil {
		return nil, &StoreError{Op: "fetching user adoptions", Err: err}
	}
	byID := make(map[string]pets.Pet, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}

	for _, id := range u.Pets {
		p, ok := byID[id]
		if !ok || !p.Adopted {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) loadUser(ctx context.Context, id string) (users.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, ErrUserNotFound
		}
		return users.User{}, &StoreError{Op: "fetching user", Err: err}
	}
	return u, nil
}

func (s *Service) loadPet(ctx context.Context, id string) (pets.Pet, error) {
	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return pets.Pet{}, ErrPetNotFound
		}
		return pets.Pet{}, &StoreError{Op: "fetching pet", Err: err}
	}
	return p, nil
}

func (s *Service) reload(ctx context.Context, userID, petID string) (Result, error) {
	p, err := s.loadPet(ctx, petID)
	if err != nil {
		return Result{}, err
	}
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return Result{Pet: p, User: u}, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrAlreadyAdopted) ||
		errors.Is(err, ErrNotOwned) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPetNotFound)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidID):
		return "invalid_id"
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPetNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyAdopted), errors.Is(err, ErrNotOwned):
		return "conflict"
	default:
		return "error"
	}
}
