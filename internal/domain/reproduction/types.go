package reproduction

// EventType define os tipos de evento do manejo reprodutivo.
// @Enum inseminacao, diagnostico, parto, secagem
type EventType string

const (
	EventTypeInseminacao EventType = "inseminacao"
	EventTypeDiagnostico EventType = "diagnostico"
	EventTypeParto       EventType = "parto"
	EventTypeSecagem     EventType = "secagem"
)

func ValidEventType(t EventType) bool {
	switch t {
	case EventTypeInseminacao, EventTypeDiagnostico, EventTypeParto, EventTypeSecagem:
		return true
	default:
		return false
	}
}

// DiagnosisResult é o resultado do diagnóstico de gestação.
// @Enum prenhe, vazia
type DiagnosisResult string

const (
	DiagnosisPrenhe DiagnosisResult = "prenhe"
	DiagnosisVazia  DiagnosisResult = "vazia"
)

// EventStatus espelha o estado resultante do evento.
type EventStatus string

const (
	EventStatusPendente EventStatus = "pendente"
	EventStatusPrenhe   EventStatus = "prenhe"
	EventStatusVazia    EventStatus = "vazia"
	EventStatusParto    EventStatus = "parto"
	EventStatusSeca     EventStatus = "seca"
)

// Priority é o nível de urgência de ações pendentes.
// @Enum alta, media, baixa
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaixa Priority = "baixa"
)

// ActionType define os tipos de ação pendente do calendário de manejo.
type ActionType string

const (
	ActionDiagnostico ActionType = "diagnostico"
	ActionSecagem     ActionType = "secagem"
	ActionParto       ActionType = "parto"
)
