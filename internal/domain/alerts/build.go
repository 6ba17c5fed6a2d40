package alerts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"controle-leiteiro/internal/domain/animals"
	"controle-leiteiro/internal/domain/health"
	"controle-leiteiro/internal/domain/production"
)

const (
	// Janela de antecedência do alerta de parto, em dias.
	calvingAlertWindowDays = 15

	// Queda percentual de produção a partir da qual alertamos.
	productionDropThreshold = 20.0

	// Registros comparados de cada lado da janela de produção.
	productionWindowSize = 6

	// Janela de antecedência do alerta de reforço sanitário, em dias.
	boosterAlertWindowDays = 7
)

// BuildAlerts recomputa os alertas do rebanho a partir do snapshot,
// sem tocar no relógio nem em armazenamento. Alertas cuja condição
// deixou de valer simplesmente não são emitidos; os que continuam
// valendo herdam a resolução persistida pelo id determinístico.
//
// A saída é ordenada por prioridade (alta > media > baixa), depois
// pela data do alerta e por fim pelo id, para ser estável.
func BuildAlerts(herd []animals.Animal, milk []production.Record, sanitary []health.Record, resolutions []Resolution, today time.Time) []Alert {
	byID := make(map[string]animals.Animal, len(herd))
	for _, a := range herd {
		byID[a.ID] = a
	}

	out := make([]Alert, 0)
	out = append(out, calvingAlerts(herd, today)...)
	out = append(out, productionAlerts(herd, milk)...)
	out = append(out, boosterAlerts(byID, sanitary, today)...)

	resolved := make(map[string]Resolution, len(resolutions))
	for _, res := range resolutions {
		resolved[res.ID] = res
	}
	for i := range out {
		if res, ok := resolved[out[i].ID]; ok {
			out[i].Resolved = res.Resolved
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
		}
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// calvingAlerts emite um alerta por animal com parto previsto dentro da
// janela, incluindo partos já atrasados.
func calvingAlerts(herd []animals.Animal, today time.Time) []Alert {
	out := make([]Alert, 0)
	for _, a := range herd {
		if a.NextCalvingDate == nil {
			continue
		}
		du := daysBetween(today, *a.NextCalvingDate)
		if du > calvingAlertWindowDays {
			continue
		}

		var desc string
		switch {
		case du < 0:
			desc = fmt.Sprintf("Parto previsto há %d dias e ainda não registrado", -du)
		case du == 0:
			desc = "Parto previsto para hoje"
		default:
			desc = fmt.Sprintf("Parto previsto em %d dias", du)
		}

		out = append(out, Alert{
			ID:          "parto-" + a.ID,
			Type:        TypeParto,
			AnimalLabel: animalLabel(a),
			Description: desc,
			Date:        *a.NextCalvingDate,
			Priority:    calvingPriority(du),
		})
	}
	return out
}

func calvingPriority(daysUntil int) Priority {
	switch {
	case daysUntil <= 3:
		return PriorityAlta
	case daysUntil <= 7:
		return PriorityMedia
	default:
		return PriorityBaixa
	}
}

// productionAlerts compara, por animal, a média dos 3 registros mais
// recentes com a média dos 3 anteriores. Só avalia animais com pelo
// menos 6 registros; média anterior zero não gera alerta.
func productionAlerts(herd []animals.Animal, milk []production.Record) []Alert {
	perAnimal := make(map[string][]production.Record)
	for _, rec := range milk {
		perAnimal[rec.AnimalID] = append(perAnimal[rec.AnimalID], rec)
	}

	out := make([]Alert, 0)
	for _, a := range herd {
		recs := perAnimal[a.ID]
		if len(recs) < productionWindowSize {
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Date.After(recs[j].Date)
		})

		half := productionWindowSize / 2
		recent := averageQuantity(recs[:half])
		prior := averageQuantity(recs[half:productionWindowSize])
		if prior == 0 {
			continue
		}

		drop := (prior - recent) / prior * 100
		if drop <= productionDropThreshold {
			continue
		}

		out = append(out, Alert{
			ID:          "producao-" + a.ID,
			Type:        TypeProducao,
			AnimalLabel: animalLabel(a),
			Description: fmt.Sprintf("Queda de %.1f%% na produção nos últimos registros", drop),
			Date:        recs[0].Date,
			Priority:    PriorityAlta,
		})
	}
	return out
}

func averageQuantity(recs []production.Record) float64 {
	if len(recs) == 0 {
		return 0
	}
	var total float64
	for _, rec := range recs {
		total += rec.Quantity
	}
	return total / float64(len(recs))
}

// boosterAlerts emite um alerta por registro sanitário com reforço
// previsto dentro da janela ou já vencido. Registros de animais que
// saíram do rebanho são ignorados.
func boosterAlerts(byID map[string]animals.Animal, sanitary []health.Record, today time.Time) []Alert {
	out := make([]Alert, 0)
	for _, rec := range sanitary {
		if rec.NextDose == nil {
			continue
		}
		a, ok := byID[rec.AnimalID]
		if !ok {
			continue
		}
		du := daysBetween(today, *rec.NextDose)
		if du > boosterAlertWindowDays {
			continue
		}

		var desc string
		priority := PriorityMedia
		switch {
		case du < 0:
			desc = fmt.Sprintf("Reforço de %s atrasado há %d dias", rec.VaccineName, -du)
			priority = PriorityAlta
		case du == 0:
			desc = fmt.Sprintf("Reforço de %s previsto para hoje", rec.VaccineName)
		default:
			desc = fmt.Sprintf("Reforço de %s em %d dias", rec.VaccineName, du)
		}

		out = append(out, Alert{
			ID:          "sanitario-" + rec.ID,
			Type:        TypeSanitario,
			AnimalLabel: animalLabel(a),
			Description: desc,
			Date:        *rec.NextDose,
			Priority:    priority,
		})
	}
	return out
}

func animalLabel(a animals.Animal) string {
	if a.Name == "" {
		return a.Number
	}
	return a.Number + " - " + a.Name
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityAlta:
		return 0
	case PriorityMedia:
		return 1
	default:
		return 2
	}
}

// daysBetween arredonda para cima, de modo que qualquer fração de dia
// no futuro conte como um dia inteiro.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
