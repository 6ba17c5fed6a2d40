package alerts

import "time"

// Type define os tipos de alerta do painel.
// @Enum parto, producao, sanitario
type Type string

const (
	TypeParto     Type = "parto"
	TypeProducao  Type = "producao"
	TypeSanitario Type = "sanitario"
)

// Priority é o nível de urgência do alerta.
// @Enum alta, media, baixa
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaixa Priority = "baixa"
)

// Alert é um alerta computado a partir do snapshot. O ID é determinístico
// em função da condição que o disparou (`parto-{animalId}`,
// `producao-{animalId}`, `sanitario-{registroId}`), de modo que a
// resolução persistida continue valendo entre recomputações.
type Alert struct {
	ID          string
	Type        Type
	AnimalLabel string // "numero - nome"
	Description string
	Date        time.Time
	Resolved    bool
	Priority    Priority
}

// Resolution é o registro persistido de um alerta marcado como
// resolvido pelo produtor.
type Resolution struct {
	ID          string // id determinístico do alerta
	OwnerUserID string
	Resolved    bool
	ResolvedAt  time.Time
}
