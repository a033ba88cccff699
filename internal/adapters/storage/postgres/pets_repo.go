package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
)

const petColumns = `
	id, name, specie, birth_date,
	adopted, owner, image,
	created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return insertPet(ctx, conn(ctx, r.db), p)
}

// CreateMany inserta el lote en una sola transacción.
func (r *PetsRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	return NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		q := conn(ctx, r.db)
		for _, p := range ps {
			if err := insertPet(ctx, q, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertPet(ctx context.Context, q querier, p pets.Pet) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Specie,
		p.BirthDate,
		p.Adopted,
		toNullString(p.Owner),
		toNullString(p.Image),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update arma el SET solo con los campos presentes del patch. updated_at
// siempre se escribe.
func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	sets := make([]string, 0, 7)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Specie != nil {
		add("specie", *patch.Specie)
	}
	if patch.BirthDate != nil {
		add("birth_date", *patch.BirthDate)
	}
	if patch.Adopted != nil {
		add("adopted", *patch.Adopted)
	}
	if patch.Owner.Present {
		add("owner", toNullString(patch.Owner.Value))
	}
	if patch.Image.Present {
		add("image", toNullString(patch.Image.Value))
	}
	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	add("updated_at", updatedAt)

	row := conn(ctx, r.db).QueryRowContext(ctx,
		"UPDATE pets SET "+strings.Join(sets, ", ")+" WHERE id = $1 RETURNING "+petColumns,
		args...,
	)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := conn(ctx, r.db).QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	if len(ids) == 0 {
		return []pets.Pet{}, nil
	}
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`, ids)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *PetsRepo) ListAdopted(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE adopted AND owner IS NOT NULL
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return err
}

// SetAdoption escribe solo si el estado previo es el esperado (libre para
// adoptar, adoptada para liberar). Si no matchea distingue entre mascota
// inexistente y conflicto.
func (r *PetsRepo) SetAdoption(ctx context.Context, petID string, owner *string) error {
	q := conn(ctx, r.db)
	res, err := q.ExecContext(ctx, `
		UPDATE pets
		SET adopted = $2, owner = $3, updated_at = $4
		WHERE id = $1 AND adopted = $5
	`, petID, owner != nil, toNullString(owner), time.Now().UTC(), owner == nil)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM pets WHERE id = $1)`, petID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return pets.ErrAdoptionConflict
	}
	return pets.ErrNotFound
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var owner, image sql.NullString
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Specie,
		&p.BirthDate,
		&p.Adopted,
		&owner,
		&image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Owner = fromNullString(owner)
	p.Image = fromNullString(image)
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
