package reproduction

import "time"

// GestationDays é a duração fixa da gestação usada na projeção do parto.
const GestationDays = 280

// ExpectedCalving projeta a data prevista do parto a partir da data da
// inseminação. Calculada uma vez no registro do evento e persistida;
// não é recalculada conforme o tempo passa.
func ExpectedCalving(inseminationDate time.Time) time.Time {
	return inseminationDate.AddDate(0, 0, GestationDays)
}

// Event representa um evento do manejo reprodutivo. O payload varia por
// tipo; campos que não pertencem ao tipo ficam zerados, como no schema
// de linha única da tabela reproducao.
type Event struct {
	ID          string
	AnimalID    string
	OwnerUserID string

	Type   EventType
	Status EventStatus

	// inseminacao
	InseminationDate *time.Time
	Bull             string
	Technician       string
	Protocol         string

	// diagnostico; InseminationDate é copiada da inseminação aberta no
	// momento da escrita, para o cálculo do período de serviço.
	DiagnosisDate   *time.Time
	DiagnosisResult DiagnosisResult

	// parto
	CalvingDate *time.Time

	// secagem
	DryingDate *time.Time

	// Derivada na inseminação (data + 280 dias) e copiada para o
	// diagnóstico prenhe do mesmo ciclo.
	ExpectedCalvingDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Date devolve a data relevante do evento conforme o tipo (nil quando
// o campo obrigatório do tipo não está preenchido).
func (e Event) Date() *time.Time {
	switch e.Type {
	case EventTypeInseminacao:
		return e.InseminationDate
	case EventTypeDiagnostico:
		return e.DiagnosisDate
	case EventTypeParto:
		return e.CalvingDate
	case EventTypeSecagem:
		return e.DryingDate
	default:
		return nil
	}
}
