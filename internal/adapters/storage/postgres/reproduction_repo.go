package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"controle-leiteiro/internal/domain/reproduction"
)

// Colunas da tabela reproducao, na ordem usada por todos os SELECTs.
const reproductionColumns = `
	id, animal_id, user_id,
	tipo_evento, status,
	data_inseminacao, touro, tecnico, protocolo,
	data_diagnostico, resultado_diagnostico,
	data_parto_real, data_secagem,
	data_prevista_parto,
	observacoes,
	created_at, updated_at
`

type ReproductionRepo struct {
	db *sql.DB
}

func NewReproductionRepo(db *sql.DB) *ReproductionRepo {
	return &ReproductionRepo{db: db}
}

func (r *ReproductionRepo) Create(ctx context.Context, e reproduction.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reproducao (`+reproductionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		e.ID,
		e.AnimalID,
		e.OwnerUserID,
		string(e.Type),
		string(e.Status),
		e.InseminationDate,
		e.Bull,
		e.Technician,
		e.Protocol,
		e.DiagnosisDate,
		string(e.DiagnosisResult),
		e.CalvingDate,
		e.DryingDate,
		e.ExpectedCalvingDate,
		e.Notes,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *ReproductionRepo) Update(ctx context.Context, e reproduction.Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reproducao
		SET status = $2,
			data_inseminacao = $3,
			touro = $4,
			tecnico = $5,
			protocolo = $6,
			data_diagnostico = $7,
			resultado_diagnostico = $8,
			data_parto_real = $9,
			data_secagem = $10,
			data_prevista_parto = $11,
			observacoes = $12,
			updated_at = $13
		WHERE id = $1
	`,
		e.ID,
		string(e.Status),
		e.InseminationDate,
		e.Bull,
		e.Technician,
		e.Protocol,
		e.DiagnosisDate,
		string(e.DiagnosisResult),
		e.CalvingDate,
		e.DryingDate,
		e.ExpectedCalvingDate,
		e.Notes,
		e.UpdatedAt,
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

func (r *ReproductionRepo) GetByID(ctx context.Context, id string) (reproduction.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reproduction.Event{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+reproductionColumns+`
		FROM reproducao
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reproduction.Event{}, ErrNotFound
		}
		return reproduction.Event{}, err
	}
	return e, nil
}

func (r *ReproductionRepo) ListByOwner(ctx context.Context, ownerUserID string, filter reproduction.ListFilter) ([]reproduction.Event, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + reproductionColumns + `
		FROM reproducao
		WHERE user_id = $1
	`)

	args := []any{ownerUserID}
	argN := 2

	if strings.TrimSpace(filter.AnimalID) != "" {
		sb.WriteString(fmt.Sprintf(" AND animal_id = $%d", argN))
		args = append(args, strings.TrimSpace(filter.AnimalID))
		argN++
	}

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND tipo_evento IN (" + strings.Join(placeholders, ",") + ")")
	}

	// Ordem pela data relevante do evento desc; eventos sem data vão
	// para o fim.
	sb.WriteString(`
		ORDER BY COALESCE(data_inseminacao, data_diagnostico, data_parto_real, data_secagem) DESC NULLS LAST,
			created_at DESC
	`)

	// Limite <= 0 lista tudo; derivações de ciclo precisam do histórico
	// completo.
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	return r.queryEvents(ctx, sb.String(), args...)
}

func (r *ReproductionRepo) ListByAnimal(ctx context.Context, animalID string) ([]reproduction.Event, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, nil
	}

	return r.queryEvents(ctx, `
		SELECT `+reproductionColumns+`
		FROM reproducao
		WHERE animal_id = $1
		ORDER BY COALESCE(data_inseminacao, data_diagnostico, data_parto_real, data_secagem) DESC NULLS LAST,
			created_at DESC
	`, animalID)
}

func (r *ReproductionRepo) queryEvents(ctx context.Context, query string, args ...any) ([]reproduction.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reproduction.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func scanEvent(row rowScanner) (reproduction.Event, error) {
	var e reproduction.Event
	var typ, status, result string
	var insemination, diagnosis, calving, drying, expected sql.NullTime

	if err := row.Scan(
		&e.ID,
		&e.AnimalID,
		&e.OwnerUserID,
		&typ,
		&status,
		&insemination,
		&e.Bull,
		&e.Technician,
		&e.Protocol,
		&diagnosis,
		&result,
		&calving,
		&drying,
		&expected,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return reproduction.Event{}, err
	}

	e.Type = reproduction.EventType(typ)
	e.Status = reproduction.EventStatus(status)
	e.DiagnosisResult = reproduction.DiagnosisResult(result)

	if insemination.Valid {
		t := insemination.Time
		e.InseminationDate = &t
	}
	if diagnosis.Valid {
		t := diagnosis.Time
		e.DiagnosisDate = &t
	}
	if calving.Valid {
		t := calving.Time
		e.CalvingDate = &t
	}
	if drying.Valid {
		t := drying.Time
		e.DryingDate = &t
	}
	if expected.Valid {
		t := expected.Time
		e.ExpectedCalvingDate = &t
	}

	return e, nil
}
