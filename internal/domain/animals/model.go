package animals

import "time"

// Status define o status produtivo/reprodutivo do animal.
// @Enum lactante, seca, prenhe
type Status string

const (
	StatusLactante Status = "lactante"
	StatusSeca     Status = "seca"
	StatusPrenhe   Status = "prenhe"
)

// ValidStatus indica se s é um dos status aceitos.
func ValidStatus(s Status) bool {
	switch s {
	case StatusLactante, StatusSeca, StatusPrenhe:
		return true
	default:
		return false
	}
}

// Breed define as raças leiteiras mais comuns.
type Breed string

const (
	BreedHolandesa  Breed = "holandesa"
	BreedJersey     Breed = "jersey"
	BreedGirolando  Breed = "girolando"
	BreedGir        Breed = "gir"
	BreedPardoSuico Breed = "pardo_suico"
	BreedOutra      Breed = "outra"
)

// Animal representa uma vaca cadastrada no rebanho de um produtor.
type Animal struct {
	ID          string
	OwnerUserID string

	Number string // brinco/número visível no animal
	Name   string
	Breed  string // livre, com sugestões em Breed

	BirthDate *time.Time
	Status    Status

	// Data prevista do próximo parto. Preenchida automaticamente no
	// registro da inseminação (+280 dias) e limpa no parto.
	NextCalvingDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
