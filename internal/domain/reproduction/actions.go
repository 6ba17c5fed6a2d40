package reproduction

import (
	"sort"
	"time"

	"controle-leiteiro/internal/domain/animals"
)

// PendingAction é uma ação pendente do calendário de manejo.
type PendingAction struct {
	Type   ActionType
	Animal animals.Animal
	Event  Event

	// Dias restantes até o momento ideal da ação; negativo = atrasada.
	DaysRemaining int
	Priority      Priority
}

// PendingActions varre o snapshot e devolve as ações pendentes de todos
// os animais, ordenadas por dias restantes ascendente (atrasadas
// primeiro). Cada condição é independente: o mesmo animal pode aparecer
// em mais de um tipo de ação. Eventos de animais desconhecidos ou sem a
// data obrigatória do tipo são ignorados.
func PendingActions(herd []animals.Animal, evs []Event, today time.Time) []PendingAction {
	byID := make(map[string]animals.Animal, len(herd))
	for _, a := range herd {
		byID[a.ID] = a
	}
	byAnimal := make(map[string][]Event)
	for _, e := range evs {
		byAnimal[e.AnimalID] = append(byAnimal[e.AnimalID], e)
	}

	out := make([]PendingAction, 0)

	for _, e := range evs {
		a, ok := byID[e.AnimalID]
		if !ok {
			continue
		}
		history := byAnimal[e.AnimalID]

		switch e.Type {
		case EventTypeInseminacao:
			if e.InseminationDate == nil {
				continue
			}

			// Diagnóstico pendente: 30-60 dias após a IA, sem
			// diagnóstico posterior. Ideal aos 45 dias.
			if !hasEventOnOrAfter(history, EventTypeDiagnostico, *e.InseminationDate) {
				d := daysBetween(*e.InseminationDate, today)
				if d >= 30 && d <= 60 {
					prio := PriorityMedia
					if d > 40 {
						prio = PriorityAlta
					}
					out = append(out, PendingAction{
						Type:          ActionDiagnostico,
						Animal:        a,
						Event:         e,
						DaysRemaining: 45 - d,
						Priority:      prio,
					})
				}
			}

			// Parto próximo: até 15 dias da data prevista, sem parto
			// registrado depois da IA.
			if e.ExpectedCalvingDate != nil && !hasEventOnOrAfter(history, EventTypeParto, *e.InseminationDate) {
				du := daysBetween(today, *e.ExpectedCalvingDate)
				if du >= 0 && du <= 15 {
					prio := PriorityBaixa
					if du <= 3 {
						prio = PriorityAlta
					} else if du <= 7 {
						prio = PriorityMedia
					}
					out = append(out, PendingAction{
						Type:          ActionParto,
						Animal:        a,
						Event:         e,
						DaysRemaining: du,
						Priority:      prio,
					})
				}
			}

		case EventTypeDiagnostico:
			// Secagem pendente: prenhez confirmada, janela de 70 dias
			// antes do parto previsto, sem secagem posterior. Ideal 60
			// dias pré-parto.
			if e.DiagnosisResult != DiagnosisPrenhe || e.DiagnosisDate == nil || e.ExpectedCalvingDate == nil {
				continue
			}
			if hasEventOnOrAfter(history, EventTypeSecagem, *e.DiagnosisDate) {
				continue
			}
			du := daysBetween(today, *e.ExpectedCalvingDate)
			if du > 0 && du <= 70 {
				prio := PriorityMedia
				if du <= 60 {
					prio = PriorityAlta
				}
				out = append(out, PendingAction{
					Type:          ActionSecagem,
					Animal:        a,
					Event:         e,
					DaysRemaining: du - 60,
					Priority:      prio,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})

	return out
}
