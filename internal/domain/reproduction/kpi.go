package reproduction

import (
	"time"

	"controle-leiteiro/internal/domain/animals"
)

// serviceWindowDays é a janela da taxa de serviço.
const serviceWindowDays = 21

// calvingIntervalPlaceholder é o valor fixo (em meses) devolvido quando
// há mais de um parto registrado. O cálculo real exige acompanhamento
// longitudinal multi-lactação que o sistema não tem; o valor é um
// placeholder assumido, não uma métrica.
const calvingIntervalPlaceholder = 13.2

// Indicators são os indicadores de fertilidade do rebanho. Percentuais
// são floats simples, sem clamp; quem exibe decide formatação.
type Indicators struct {
	ServiceRate      float64 // inseminações em 21 dias / lactantes × 100
	ConceptionRate   float64 // diagnósticos prenhe / diagnósticos × 100
	PregnancyRate    float64 // serviço × concepção / 100 (composta)
	CalvingInterval  float64 // placeholder, ver acima
	AvgServicePeriod float64 // média de dias inseminação → diagnóstico prenhe
}

// CalculateIndicators computa os indicadores sobre o snapshot completo
// do rebanho. Função pura: não consulta relógio nem storage. Nunca
// divide por zero — denominador vazio resulta em 0.
func CalculateIndicators(herd []animals.Animal, evs []Event, today time.Time) Indicators {
	var ind Indicators

	since := today.AddDate(0, 0, -serviceWindowDays)

	lactating := 0
	for _, a := range herd {
		if a.Status == animals.StatusLactante {
			lactating++
		}
	}

	recentServices := 0
	diagnoses := 0
	pregnant := 0
	calvings := 0
	periodSum := 0
	periodN := 0

	for _, e := range evs {
		if e.Type == EventTypeInseminacao && e.InseminationDate != nil && !e.InseminationDate.Before(since) {
			recentServices++
		}
		if e.DiagnosisResult != "" {
			diagnoses++
			if e.DiagnosisResult == DiagnosisPrenhe {
				pregnant++
			}
		}
		if e.CalvingDate != nil {
			calvings++
		}
		if e.DiagnosisDate != nil && e.DiagnosisResult == DiagnosisPrenhe && e.InseminationDate != nil {
			periodSum += daysBetween(*e.InseminationDate, *e.DiagnosisDate)
			periodN++
		}
	}

	if lactating > 0 {
		ind.ServiceRate = float64(recentServices) / float64(lactating) * 100
	}
	if diagnoses > 0 {
		ind.ConceptionRate = float64(pregnant) / float64(diagnoses) * 100
	}
	ind.PregnancyRate = ind.ServiceRate * ind.ConceptionRate / 100

	if calvings > 1 {
		ind.CalvingInterval = calvingIntervalPlaceholder
	}
	if periodN > 0 {
		ind.AvgServicePeriod = float64(periodSum) / float64(periodN)
	}

	return ind
}
