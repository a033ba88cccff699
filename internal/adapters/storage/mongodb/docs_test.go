package mongodb

import (
	"testing"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPetDoc_OwnerIsNullWhenUnadopted(t *testing.T) {
	p := pets.Pet{ID: ids.New(), Name: "Rex", Specie: "dog", BirthDate: time.Now()}
	doc, err := toPetDoc(p)
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	v, present := m["owner"]
	assert.True(t, present, "owner se guarda explícitamente como null")
	assert.Nil(t, v)
}

func TestPetDoc_OwnerIsObjectID(t *testing.T) {
	owner := ids.New()
	p := pets.Pet{ID: ids.New(), Name: "Rex", Specie: "dog", Adopted: true, Owner: &owner}

	doc, err := toPetDoc(p)
	require.NoError(t, err)
	require.NotNil(t, doc.Owner)
	assert.Equal(t, owner, doc.Owner.Hex())

	back := doc.toDomain()
	assert.True(t, back.IsAdoptedBy(owner))
}

func TestPetDoc_RejectsMalformedOwner(t *testing.T) {
	bad := "not-an-id"
	_, err := toPetDoc(pets.Pet{ID: ids.New(), Owner: &bad})
	assert.Error(t, err)
}

func TestUserDoc_PetsKeepOrder(t *testing.T) {
	petIDs := []string{ids.New(), ids.New(), ids.New()}
	u := users.User{ID: ids.New(), Email: "a@b.com", Role: users.RoleAdmin, Pets: petIDs}

	doc, err := toUserDoc(u)
	require.NoError(t, err)
	require.Len(t, doc.Pets, 3)

	back := doc.toDomain()
	assert.Equal(t, petIDs, back.Pets)
	assert.Equal(t, users.RoleAdmin, back.Role)
}

func TestObjectIDsLenient(t *testing.T) {
	good := ids.New()
	out := objectIDsLenient([]string{good, "x", ""})
	require.Len(t, out, 1)
	assert.Equal(t, good, out[0].Hex())
}

func TestPetPatchSet_OnlyPresentKeys(t *testing.T) {
	name := "Max"
	now := time.Now()

	set, err := petPatchSet(pets.Patch{Name: &name, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Max", "updatedAt": now.UTC()}, set)
	assert.NotContains(t, set, "adopted")
	assert.NotContains(t, set, "owner")

	owner := ids.New()
	set, err = petPatchSet(pets.Patch{Owner: pets.Nullable{Present: true, Value: &owner}, Image: pets.Nullable{Present: true}})
	require.NoError(t, err)
	oid, ok := ids.ToObjectID(owner)
	require.True(t, ok)
	assert.Equal(t, &oid, set["owner"])
	img, present := set["image"]
	assert.True(t, present, "image: null se escribe")
	assert.Nil(t, img)
	assert.Contains(t, set, "updatedAt")

	bad := "nope"
	_, err = petPatchSet(pets.Patch{Owner: pets.Nullable{Present: true, Value: &bad}})
	assert.Error(t, err)
}
