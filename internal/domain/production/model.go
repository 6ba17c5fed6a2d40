package production

import "time"

// Period define o período da ordenha.
// @Enum manha, tarde, noite
type Period string

const (
	PeriodManha Period = "manha"
	PeriodTarde Period = "tarde"
	PeriodNoite Period = "noite"
)

func ValidPeriod(p Period) bool {
	switch p {
	case PeriodManha, PeriodTarde, PeriodNoite:
		return true
	default:
		return false
	}
}

// Record é um registro de ordenha de um animal em um período do dia.
type Record struct {
	ID          string
	OwnerUserID string
	AnimalID    string

	Date     time.Time
	Period   Period
	Quantity float64 // litros

	CreatedAt time.Time
}
