package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `
	id, first_name, last_name, email, password, role,
	pets, created_at, updated_at`

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return mapUserErr(r.insert(ctx, conn(ctx, r.db), u))
}

// CreateMany inserta el lote en una sola transacción.
func (r *UsersRepo) CreateMany(ctx context.Context, us []users.User) error {
	err := NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.db)
		for _, u := range us {
			if err := r.insert(ctx, q, u); err != nil {
				return err
			}
		}
		return nil
	})
	return mapUserErr(err)
}

func (r *UsersRepo) insert(ctx context.Context, q querier, u users.User) error {
	petIDs := u.Pets
	if petIDs == nil {
		petIDs = []string{}
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		petIDs,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}

	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(pgtype.NewMap(), row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetMany(ctx context.Context, ids []string) ([]users.User, error) {
	if len(ids) == 0 {
		return []users.User{}, nil
	}
	return r.query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`, ids)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	return r.query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at ASC, id ASC
	`)
}

// Update no toca la columna pets.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			password = $5,
			role = $6,
			updated_at = $7
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		u.UpdatedAt,
	)
	if err != nil {
		return mapUserErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// AddPet agrega al final del array si todavía no está.
func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	return r.execPets(ctx, `
		UPDATE users
		SET pets = CASE WHEN $2 = ANY(pets) THEN pets ELSE array_append(pets, $2) END,
			updated_at = $3
		WHERE id = $1
	`, userID, petID)
}

func (r *UsersRepo) RemovePet(ctx context.Context, userID, petID string) error {
	return r.execPets(ctx, `
		UPDATE users
		SET pets = array_remove(pets, $2), updated_at = $3
		WHERE id = $1
	`, userID, petID)
}

func (r *UsersRepo) execPets(ctx context.Context, q, userID, petID string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, q, userID, petID, time.Now().UTC())
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) query(ctx context.Context, q string, args ...any) ([]users.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// pgtype.Map no es seguro para uso concurrente: uno por consulta.
	types := pgtype.NewMap()
	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(types, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(types *pgtype.Map, s scanner) (users.User, error) {
	var u users.User
	var role string
	petIDs := []string{}
	if err := s.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		// text[] -> []string vía pgtype (database/sql no sabe de arrays)
		types.SQLScanner(&petIDs),
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}
	u.Role = users.Role(role)
	u.Pets = petIDs
	return u, nil
}

func mapUserErr(err error) error {
	if err != nil && isUniqueViolation(err) {
		return users.ErrDuplicateEmail
	}
	return err
}
