package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoptions/internal/platform/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID     map[string]Pet
	failRead error
	patches  []Patch
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) CreateMany(ctx context.Context, ps []Pet) error {
	for _, p := range ps {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	if r.failRead != nil {
		return Pet{}, r.failRead
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetMany(ctx context.Context, petIDs []string) ([]Pet, error) {
	out := make([]Pet, 0, len(petIDs))
	for _, id := range petIDs {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListAdopted(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.Adopted && p.Owner != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update aplica el patch sobre lo guardado, igual que los stores reales.
func (r *testRepo) Update(ctx context.Context, id string, patch Patch) (Pet, error) {
	r.patches = append(r.patches, patch)
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	patch.Apply(&p)
	r.byID[id] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) SetAdoption(ctx context.Context, petID string, owner *string) error {
	p, ok := r.byID[petID]
	if !ok {
		return ErrNotFound
	}
	if p.Adopted == (owner != nil) {
		return ErrAdoptionConflict
	}
	p.Adopted = owner != nil
	p.Owner = owner
	r.byID[petID] = p
	return nil
}

type testOwners map[string]OwnerSummary

func (o testOwners) OwnersByID(ctx context.Context, userIDs []string) (map[string]OwnerSummary, error) {
	out := map[string]OwnerSummary{}
	for _, id := range userIDs {
		if s, ok := o[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func newTestService(repo *testRepo, now time.Time) *Service {
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, svc *Service, name string) Pet {
	t.Helper()
	bd, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	p, err := svc.Create(context.Background(), CreateInput{Name: name, Specie: "dog", BirthDate: &bd})
	require.NoError(t, err)
	return p
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndValidates(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	bd, _ := ParseDate("2020-01-01")
	p, err := svc.Create(context.Background(), CreateInput{Name: "  Rex ", Specie: "dog", BirthDate: &bd})
	require.NoError(t, err)
	assert.True(t, ids.Valid(p.ID))
	assert.Equal(t, "Rex", p.Name)
	assert.False(t, p.Adopted)
	assert.Nil(t, p.Owner)
	assert.Equal(t, now, p.CreatedAt)
	assert.Contains(t, repo.byID, p.ID)

	_, err = svc.Create(context.Background(), CreateInput{Name: " ", Specie: "dog", BirthDate: &bd})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), CreateInput{Name: "Rex", Specie: "dog"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, repo.byID, 1)
}

func TestService_GetByID_MissingOrMalformed(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())

	for _, id := range []string{ids.New(), "nope", ""} {
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}

	boom := errors.New("connection reset")
	repo.failRead = boom
	_, err := svc.GetByID(context.Background(), ids.New())
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "fetching pet", se.Op)
}

func TestService_Update_MissingPet(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Update(context.Background(), ids.New(), UpdateInput{Name: strPtr("Max")})
	assert.ErrorIs(t, err, ErrNotFound)

	// mal formado no llega al repo
	_, err = svc.Update(context.Background(), "nope", UpdateInput{Name: strPtr("Max")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, repo.patches, 1)
}

func TestService_Update_PartialLeavesOtherFields(t *testing.T) {
	repo := newTestRepo()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestService(repo, created)
	p := mustCreate(t, svc, "Rex")

	// una adopción confirma después de que el cliente leyó la mascota
	owner := ids.New()
	require.NoError(t, repo.SetAdoption(context.Background(), p.ID, &owner))

	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: strPtr(" Max ")})
	require.NoError(t, err)

	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, "dog", got.Specie)
	assert.True(t, got.BirthDate.Equal(p.BirthDate))
	assert.True(t, got.IsAdoptedBy(owner))
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)

	// el patch solo lleva lo que vino en el body
	require.Len(t, repo.patches, 1)
	pt := repo.patches[0]
	assert.Nil(t, pt.Adopted)
	assert.False(t, pt.Owner.Present)
	assert.False(t, pt.Image.Present)
	assert.Nil(t, pt.Specie)
}

func TestService_Update_NullClearsOwnerAndImage(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	p := mustCreate(t, svc, "Rex")

	owner := ids.New()
	_, err := svc.Update(context.Background(), p.ID, UpdateInput{
		Owner: Nullable{Present: true, Value: &owner},
		Image: Nullable{Present: true, Value: strPtr("http://img")},
	})
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), p.ID, UpdateInput{
		Owner: Nullable{Present: true},
		Image: Nullable{Present: true},
	})
	require.NoError(t, err)
	assert.Nil(t, got.Owner)
	assert.Nil(t, got.Image)
}

func TestService_Update_RejectsBadInput(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	p := mustCreate(t, svc, "Rex")

	cases := []UpdateInput{
		{Name: strPtr("  ")},
		{Specie: strPtr("")},
		{Owner: Nullable{Present: true, Value: strPtr("not-an-id")}},
	}
	for _, in := range cases {
		_, err := svc.Update(context.Background(), p.ID, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Empty(t, repo.patches)
	assert.Equal(t, "Rex", repo.byID[p.ID].Name)
}

func TestService_Delete_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, time.Now())
	p := mustCreate(t, svc, "Rex")

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.NotContains(t, repo.byID, p.ID)

	assert.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.NoError(t, svc.Delete(context.Background(), ids.New()))
	assert.NoError(t, svc.Delete(context.Background(), "nope"))
}

func TestService_Resolve_Owner(t *testing.T) {
	repo := newTestRepo()
	owner := ids.New()
	svc := NewService(repo, testOwners{owner: {ID: owner, FirstName: "A", Email: "a@b.com"}})

	missing := ids.New()
	items := []Pet{
		{ID: ids.New(), Name: "Rex", Adopted: true, Owner: &owner},
		{ID: ids.New(), Name: "Tom", Adopted: true, Owner: &missing},
		{ID: ids.New(), Name: "Kit"},
	}
	out, err := svc.Resolve(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].OwnerDetail)
	assert.Equal(t, "a@b.com", out[0].OwnerDetail.Email)
	assert.Nil(t, out[1].OwnerDetail)
	assert.Nil(t, out[2].OwnerDetail)
}
