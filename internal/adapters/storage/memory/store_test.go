package memory

import (
	"context"
	"testing"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string, created time.Time) users.User {
	return users.User{
		ID:        ids.New(),
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     email,
		Password:  "hash",
		Role:      users.RoleUser,
		Pets:      []string{},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func newPet(name string, created time.Time) pets.Pet {
	return pets.Pet{
		ID:        ids.New(),
		Name:      name,
		Specie:    "cat",
		BirthDate: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestUserRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	t0 := time.Now()

	a := newUser("a@x.com", t0)
	b := newUser("b@x.com", t0.Add(time.Second))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, a))

	assert.ErrorIs(t, repo.Create(ctx, newUser("a@x.com", t0)), users.ErrDuplicateEmail)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)

	a.FirstName = "Ann"
	a.Pets = []string{"ignored"}
	require.NoError(t, repo.Update(ctx, a))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Empty(t, got.Pets, "Update no toca pets")

	b.Email = "a@x.com"
	assert.ErrorIs(t, repo.Update(ctx, b), users.ErrDuplicateEmail)

	require.NoError(t, repo.Delete(ctx, a.ID))
	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, a), users.ErrNotFound)
}

func TestUserRepo_CreateMany_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	now := time.Now()

	err := repo.CreateMany(ctx, []users.User{newUser("x@x.com", now), newUser("x@x.com", now)})
	assert.ErrorIs(t, err, users.ErrDuplicateEmail)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserRepo_PetsList(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	u := newUser("p@x.com", time.Now())
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.AddPet(ctx, u.ID, "p1"))
	require.NoError(t, repo.AddPet(ctx, u.ID, "p2"))
	require.NoError(t, repo.AddPet(ctx, u.ID, "p1"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, got.Pets)

	// la copia devuelta no comparte memoria con el store
	got.Pets[0] = "mutated"
	again, _ := repo.GetByID(ctx, u.ID)
	assert.Equal(t, "p1", again.Pets[0])

	require.NoError(t, repo.RemovePet(ctx, u.ID, "p1"))
	again, _ = repo.GetByID(ctx, u.ID)
	assert.Equal(t, []string{"p2"}, again.Pets)

	assert.ErrorIs(t, repo.AddPet(ctx, ids.New(), "p1"), users.ErrNotFound)
}

func TestPetRepo_AdoptionFields(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Pets()
	now := time.Now()

	p := newPet("Rex", now)
	q := newPet("Tom", now.Add(time.Second))
	require.NoError(t, repo.CreateMany(ctx, []pets.Pet{p, q}))

	owner := ids.New()
	require.NoError(t, repo.SetAdoption(ctx, p.ID, &owner))

	adopted, err := repo.ListAdopted(ctx)
	require.NoError(t, err)
	require.Len(t, adopted, 1)
	assert.True(t, adopted[0].IsAdoptedBy(owner))

	require.NoError(t, repo.SetAdoption(ctx, p.ID, nil))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Adopted)
	assert.Nil(t, got.Owner)

	assert.ErrorIs(t, repo.SetAdoption(ctx, ids.New(), nil), pets.ErrNotFound)

	// escrituras condicionales: no se adopta dos veces ni se libera lo libre
	require.NoError(t, repo.SetAdoption(ctx, q.ID, &owner))
	other := ids.New()
	assert.ErrorIs(t, repo.SetAdoption(ctx, q.ID, &other), pets.ErrAdoptionConflict)
	assert.ErrorIs(t, repo.SetAdoption(ctx, p.ID, nil), pets.ErrAdoptionConflict)
	got, _ = repo.GetByID(ctx, q.ID)
	assert.True(t, got.IsAdoptedBy(owner))
}

func TestPetRepo_UpdateWritesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Pets()
	now := time.Now()

	p := newPet("Rex", now)
	require.NoError(t, repo.Create(ctx, p))

	// una adopción entra entre la lectura del cliente y su PUT
	owner := ids.New()
	require.NoError(t, repo.SetAdoption(ctx, p.ID, &owner))

	name := "Max"
	later := now.Add(time.Minute)
	got, err := repo.Update(ctx, p.ID, pets.Patch{Name: &name, UpdatedAt: later})
	require.NoError(t, err)
	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, "cat", got.Specie)
	assert.True(t, got.IsAdoptedBy(owner), "PUT sin adopted/owner no pisa la adopción")
	assert.True(t, got.UpdatedAt.Equal(later))

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdoptedBy(owner))

	// owner: null sí limpia
	got, err = repo.Update(ctx, p.ID, pets.Patch{Owner: pets.Nullable{Present: true}})
	require.NoError(t, err)
	assert.Nil(t, got.Owner)
	assert.True(t, got.Adopted)
}

func TestPetRepo_GetManyAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Pets()
	now := time.Now()

	p := newPet("Rex", now)
	require.NoError(t, repo.Create(ctx, p))

	items, err := repo.GetMany(ctx, []string{p.ID, ids.New(), p.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = repo.Update(ctx, p.ID, pets.Patch{})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}
