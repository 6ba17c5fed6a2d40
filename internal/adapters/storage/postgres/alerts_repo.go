package postgres

import (
	"context"
	"database/sql"
	"strings"

	"controle-leiteiro/internal/domain/alerts"
)

type AlertsRepo struct {
	db *sql.DB
}

func NewAlertsRepo(db *sql.DB) *AlertsRepo {
	return &AlertsRepo{db: db}
}

func (r *AlertsRepo) Upsert(ctx context.Context, res alerts.Resolution) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alertas_resolucoes (
			id, user_id, resolvido, resolvido_em
		) VALUES ($1,$2,$3,$4)
		ON CONFLICT (id, user_id) DO UPDATE
		SET resolvido = EXCLUDED.resolvido,
			resolvido_em = EXCLUDED.resolvido_em
	`,
		res.ID,
		res.OwnerUserID,
		res.Resolved,
		res.ResolvedAt,
	)
	return err
}

func (r *AlertsRepo) GetByID(ctx context.Context, ownerUserID, id string) (alerts.Resolution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return alerts.Resolution{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, resolvido, resolvido_em
		FROM alertas_resolucoes
		WHERE user_id = $1 AND id = $2
	`, ownerUserID, id)

	var res alerts.Resolution
	if err := row.Scan(&res.ID, &res.OwnerUserID, &res.Resolved, &res.ResolvedAt); err != nil {
		if err == sql.ErrNoRows {
			return alerts.Resolution{}, ErrNotFound
		}
		return alerts.Resolution{}, err
	}
	return res, nil
}

func (r *AlertsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]alerts.Resolution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, resolvido, resolvido_em
		FROM alertas_resolucoes
		WHERE user_id = $1
		ORDER BY id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]alerts.Resolution, 0)
	for rows.Next() {
		var res alerts.Resolution
		if err := rows.Scan(&res.ID, &res.OwnerUserID, &res.Resolved, &res.ResolvedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}
