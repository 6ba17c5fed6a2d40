package postgres

import (
	"context"
	"database/sql"
	"strings"

	"controle-leiteiro/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animais (
			id, user_id,
			numero, nome, raca, data_nascimento,
			status, data_proximo_parto,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.OwnerUserID,
		a.Number,
		a.Name,
		a.Breed,
		a.BirthDate,
		string(a.Status),
		a.NextCalvingDate,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animais
		SET numero = $2,
			nome = $3,
			raca = $4,
			data_nascimento = $5,
			status = $6,
			data_proximo_parto = $7,
			updated_at = $8
		WHERE id = $1
	`,
		a.ID,
		a.Number,
		a.Name,
		a.Breed,
		a.BirthDate,
		string(a.Status),
		a.NextCalvingDate,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			numero, nome, raca, data_nascimento,
			status, data_proximo_parto,
			created_at, updated_at
		FROM animais
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			numero, nome, raca, data_nascimento,
			status, data_proximo_parto,
			created_at, updated_at
		FROM animais
		WHERE user_id = $1
		ORDER BY numero ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animais
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) ListOwners(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT user_id
		FROM animais
		ORDER BY user_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		out = append(out, owner)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var status string
	var birth, nextCalving sql.NullTime

	if err := row.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.Number,
		&a.Name,
		&a.Breed,
		&birth,
		&status,
		&nextCalving,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Status = animals.Status(status)
	if birth.Valid {
		t := birth.Time
		a.BirthDate = &t
	}
	if nextCalving.Valid {
		t := nextCalving.Time
		a.NextCalvingDate = &t
	}

	return a, nil
}
