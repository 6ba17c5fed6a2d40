package health

import "time"

// Record é um registro de manejo sanitário (vacina ou medicamento
// aplicado a um animal), com a data prevista da próxima dose quando o
// protocolo exige reforço.
type Record struct {
	ID          string
	OwnerUserID string
	AnimalID    string

	VaccineName     string
	ApplicationDate time.Time
	Dose            string

	// Próxima dose do protocolo; nil quando dose única.
	NextDose *time.Time

	Notes string

	CreatedAt time.Time
}
