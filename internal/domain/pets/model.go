package pets

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Species lista las especies conocidas (las que usa el generador de mocks).
// El campo specie acepta cualquier texto.
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesFish    Species = "fish"
	SpeciesTurtle  Species = "turtle"
)

var KnownSpecies = []Species{
	SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesHamster, SpeciesFish, SpeciesTurtle,
}

// Pet representa una mascota disponible (o no) para adopción.
type Pet struct {
	ID string

	Name      string
	Specie    string
	BirthDate time.Time

	// Adopted/Owner los mantiene el módulo adoptions junto con user.pets.
	// Un update directo también puede tocarlos (no se bloquea).
	Adopted bool
	Owner   *string

	Image *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdoptedBy indica si la mascota está adoptada por userID.
func (p Pet) IsAdoptedBy(userID string) bool {
	return p.Adopted && p.Owner != nil && *p.Owner == userID
}

// OwnerSummary es la vista reducida del dueño cuando se resuelve pet.owner.
type OwnerSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// Resolved es una mascota con su dueño resuelto (nil si no tiene o ya no existe).
type Resolved struct {
	Pet
	OwnerDetail *OwnerSummary
}

// Date acepta "YYYY-MM-DD" o RFC3339 en JSON.
type Date struct {
	time.Time
}

var errInvalidDate = errors.New("birthDate must be YYYY-MM-DD or RFC3339")

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{Time: t}, nil
	}
	return Date{}, errInvalidDate
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Nullable distingue "campo no enviado" de "enviado como null" en un PUT.
type Nullable struct {
	Present bool
	Value   *string
}

// Patch son los campos que escribe un update parcial. Lo que no viene no se
// toca en el store, así un PUT no pisa una adopción concurrente.
type Patch struct {
	Name      *string
	Specie    *string
	BirthDate *time.Time
	Adopted   *bool
	Owner     Nullable
	Image     Nullable
	UpdatedAt time.Time
}

// Apply escribe en p solo los campos presentes.
func (pt Patch) Apply(p *Pet) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Specie != nil {
		p.Specie = *pt.Specie
	}
	if pt.BirthDate != nil {
		p.BirthDate = *pt.BirthDate
	}
	if pt.Adopted != nil {
		p.Adopted = *pt.Adopted
	}
	if pt.Owner.Present {
		p.Owner = copyString(pt.Owner.Value)
	}
	if pt.Image.Present {
		p.Image = copyString(pt.Image.Value)
	}
	if !pt.UpdatedAt.IsZero() {
		p.UpdatedAt = pt.UpdatedAt
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
