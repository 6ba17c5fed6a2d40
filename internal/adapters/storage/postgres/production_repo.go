package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"controle-leiteiro/internal/domain/production"
)

type ProductionRepo struct {
	db *sql.DB
}

func NewProductionRepo(db *sql.DB) *ProductionRepo {
	return &ProductionRepo{db: db}
}

func (r *ProductionRepo) Create(ctx context.Context, rec production.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO producao (
			id, user_id, animal_id,
			data, periodo, quantidade,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.AnimalID,
		rec.Date,
		string(rec.Period),
		rec.Quantity,
		rec.CreatedAt,
	)
	return err
}

func (r *ProductionRepo) ListByOwner(ctx context.Context, ownerUserID string, filter production.ListFilter) ([]production.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, user_id, animal_id,
			data, periodo, quantidade,
			created_at
		FROM producao
		WHERE user_id = $1
	`)

	args := []any{ownerUserID}
	argN := 2

	if strings.TrimSpace(filter.AnimalID) != "" {
		sb.WriteString(fmt.Sprintf(" AND animal_id = $%d", argN))
		args = append(args, strings.TrimSpace(filter.AnimalID))
		argN++
	}
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND data >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND data <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY data DESC, created_at DESC")

	// Limite <= 0 lista tudo; os alertas de queda de produção varrem o
	// histórico completo por animal.
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]production.Record, 0)
	for rows.Next() {
		var rec production.Record
		var period string

		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerUserID,
			&rec.AnimalID,
			&rec.Date,
			&period,
			&rec.Quantity,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		rec.Period = production.Period(period)
		out = append(out, rec)
	}

	return out, rows.Err()
}
