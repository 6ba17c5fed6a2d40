package reproduction

import (
	"math"
	"sort"
	"time"

	"controle-leiteiro/internal/domain/animals"
)

// CycleState é o estado do ciclo reprodutivo inferido do histórico de
// eventos de um animal.
type CycleState struct {
	// Status inferido aplicando as transições dos eventos em ordem
	// cronológica sobre o status cadastrado do animal.
	Status animals.Status

	// Inseminação mais recente sem diagnóstico/parto/secagem posterior.
	// nil quando não há ciclo aguardando diagnóstico.
	OpenInsemination *Event

	// Data prevista do parto da inseminação mais recente ainda sem
	// parto registrado. nil fora de ciclo.
	ExpectedCalving *time.Time
}

// DeriveCycleState deriva o estado do ciclo a partir dos eventos do
// animal. A ordem do slice de entrada é irrelevante; a função ordena
// internamente pela data relevante de cada tipo. Eventos sem a data
// obrigatória do tipo são ignorados.
func DeriveCycleState(a animals.Animal, evs []Event) CycleState {
	st := CycleState{Status: a.Status}

	sorted := make([]Event, 0, len(evs))
	for _, e := range evs {
		if e.AnimalID != a.ID || e.Date() == nil {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(*sorted[j].Date())
	})

	// Transições idempotentes: reaplicar o mesmo evento não muda nada.
	for _, e := range sorted {
		switch {
		case e.Type == EventTypeDiagnostico && e.DiagnosisResult == DiagnosisPrenhe:
			st.Status = animals.StatusPrenhe
		case e.Type == EventTypeParto:
			st.Status = animals.StatusLactante
		case e.Type == EventTypeSecagem:
			st.Status = animals.StatusSeca
		}
	}

	// Um animal pode ter várias inseminações (re-cobertura após
	// diagnóstico negativo); vale a mais recente sem evento de
	// fechamento posterior.
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		if e.Type != EventTypeInseminacao {
			continue
		}
		if !hasClosingOnOrAfter(sorted, *e.InseminationDate) {
			st.OpenInsemination = &sorted[i]
		}
		break
	}

	// Data prevista: da inseminação mais recente sem parto posterior.
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		if e.Type != EventTypeInseminacao || e.ExpectedCalvingDate == nil {
			continue
		}
		if !hasEventOnOrAfter(sorted, EventTypeParto, *e.InseminationDate) {
			st.ExpectedCalving = e.ExpectedCalvingDate
		}
		break
	}

	return st
}

func hasClosingOnOrAfter(evs []Event, since time.Time) bool {
	return hasEventOnOrAfter(evs, EventTypeDiagnostico, since) ||
		hasEventOnOrAfter(evs, EventTypeParto, since) ||
		hasEventOnOrAfter(evs, EventTypeSecagem, since)
}

func hasEventOnOrAfter(evs []Event, t EventType, since time.Time) bool {
	for _, e := range evs {
		if e.Type != t {
			continue
		}
		d := e.Date()
		if d != nil && !d.Before(since) {
			return true
		}
	}
	return false
}

// daysBetween conta dias de calendário entre duas datas, arredondando
// para cima (mesma aritmética de Math.ceil sobre milissegundos do
// painel original). Negativo quando to < from.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
