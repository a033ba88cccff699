package mocks

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword es la contraseña en claro de todos los usuarios generados.
const DefaultPassword = "coder123"

const (
	imageSize     = 300
	birthDateSpan = 10 * 365 * 24 * time.Hour
)

var (
	hashOnce sync.Once
	hashVal  string
	hashErr  error
)

// passwordHash calcula una sola vez el bcrypt de DefaultPassword.
func passwordHash() (string, error) {
	hashOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		hashVal, hashErr = string(b), err
	})
	return hashVal, hashErr
}

// Generator arma datos falsos con gofakeit. Es seguro para uso concurrente.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator con seed 0 usa una semilla aleatoria.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Pets genera n mascotas sin adoptar y sin dueño.
func (g *Generator) Pets(n int) []pets.CreateInput {
	g.mu.Lock()
	defer g.mu.Unlock()

	species := make([]string, 0, len(pets.KnownSpecies))
	for _, s := range pets.KnownSpecies {
		species = append(species, string(s))
	}

	end := g.now().UTC()
	start := end.Add(-birthDateSpan)

	out := make([]pets.CreateInput, 0, n)
	for i := 0; i < n; i++ {
		bd := pets.Date{Time: g.faker.DateRange(start, end).UTC()}
		img := fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", g.faker.Number(1, 1_000_000), imageSize, imageSize)
		out = append(out, pets.CreateInput{
			Name:      g.faker.FirstName(),
			Specie:    g.faker.RandomString(species),
			BirthDate: &bd,
			Adopted:   false,
			Image:     &img,
		})
	}
	return out
}

// Users genera n usuarios con emails únicos dentro del lote.
func (g *Generator) Users(n int) ([]users.CreateInput, error) {
	hash, err := passwordHash()
	if err != nil {
		return nil, fmt.Errorf("hash mock password: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	roles := []string{string(users.RoleUser), string(users.RoleAdmin)}
	seen := make(map[string]struct{}, n)

	out := make([]users.CreateInput, 0, n)
	for i := 0; i < n; i++ {
		email := strings.ToLower(g.faker.Email())
		if _, dup := seen[email]; dup {
			email = fmt.Sprintf("%d.%s", i, email)
		}
		seen[email] = struct{}{}

		out = append(out, users.CreateInput{
			FirstName: g.faker.FirstName(),
			LastName:  g.faker.LastName(),
			Email:     email,
			Password:  hash,
			Role:      users.Role(g.faker.RandomString(roles)),
		})
	}
	return out, nil
}
