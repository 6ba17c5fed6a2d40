package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"controle-leiteiro/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO manejo_sanitario (
			id, user_id, animal_id,
			nome_vacina, data_aplicacao, dose,
			proxima_dose, observacoes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.AnimalID,
		rec.VaccineName,
		rec.ApplicationDate,
		rec.Dose,
		rec.NextDose,
		rec.Notes,
		rec.CreatedAt,
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id, animal_id,
			nome_vacina, data_aplicacao, dose,
			proxima_dose, observacoes,
			created_at
		FROM manejo_sanitario
		WHERE id = $1
	`, id)

	rec, err := scanHealthRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return health.Record{}, ErrNotFound
		}
		return health.Record{}, err
	}
	return rec, nil
}

func (r *HealthRepo) ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]health.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, user_id, animal_id,
			nome_vacina, data_aplicacao, dose,
			proxima_dose, observacoes,
			created_at
		FROM manejo_sanitario
		WHERE user_id = $1
		ORDER BY data_aplicacao DESC, created_at DESC
	`)

	args := []any{ownerUserID}

	// Limite <= 0 lista tudo
	if limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)+1))
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		rec, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (r *HealthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM manejo_sanitario
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

func scanHealthRecord(row rowScanner) (health.Record, error) {
	var rec health.Record
	var nextDose sql.NullTime

	if err := row.Scan(
		&rec.ID,
		&rec.OwnerUserID,
		&rec.AnimalID,
		&rec.VaccineName,
		&rec.ApplicationDate,
		&rec.Dose,
		&nextDose,
		&rec.Notes,
		&rec.CreatedAt,
	); err != nil {
		return health.Record{}, err
	}

	if nextDose.Valid {
		t := nextDose.Time
		rec.NextDose = &t
	}

	return rec, nil
}
