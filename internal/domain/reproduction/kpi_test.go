package reproduction

import (
	"testing"
	"time"

	"controle-leiteiro/internal/domain/animals"
)

func TestCalculateIndicators_RebanhoVazio(t *testing.T) {
	ind := CalculateIndicators(nil, nil, date(2024, time.June, 1))

	if ind.ServiceRate != 0 || ind.ConceptionRate != 0 || ind.PregnancyRate != 0 ||
		ind.CalvingInterval != 0 || ind.AvgServicePeriod != 0 {
		t.Fatalf("expected all zero, got %+v", ind)
	}
}

func TestCalculateIndicators_TaxaServico(t *testing.T) {
	today := date(2024, time.June, 1)
	herd := []animals.Animal{
		{ID: "a1", Status: animals.StatusLactante},
		{ID: "a2", Status: animals.StatusLactante},
		{ID: "a3", Status: animals.StatusSeca}, // fora do denominador
	}
	evs := []Event{
		insemination("a1", date(2024, time.May, 20)),    // dentro da janela de 21 dias
		insemination("a2", date(2024, time.January, 1)), // fora
	}

	ind := CalculateIndicators(herd, evs, today)
	if ind.ServiceRate != 50 {
		t.Fatalf("expected service rate 50, got %v", ind.ServiceRate)
	}
}

func TestCalculateIndicators_ConcepcaoEPrenhez(t *testing.T) {
	today := date(2024, time.June, 1)
	herd := []animals.Animal{
		{ID: "a1", Status: animals.StatusLactante},
	}
	evs := []Event{
		insemination("a1", date(2024, time.May, 25)),
		diagnosis("a1", date(2024, time.March, 1), DiagnosisPrenhe),
		diagnosis("a1", date(2024, time.April, 1), DiagnosisVazia),
	}

	ind := CalculateIndicators(herd, evs, today)
	if ind.ServiceRate != 100 {
		t.Fatalf("expected service rate 100, got %v", ind.ServiceRate)
	}
	if ind.ConceptionRate != 50 {
		t.Fatalf("expected conception 50, got %v", ind.ConceptionRate)
	}
	// Composta: serviço × concepção / 100
	if ind.PregnancyRate != 50 {
		t.Fatalf("expected pregnancy 50, got %v", ind.PregnancyRate)
	}
}

func TestCalculateIndicators_IntervaloPartos(t *testing.T) {
	today := date(2024, time.June, 1)

	one := []Event{calving("a1", date(2023, time.October, 1))}
	if ind := CalculateIndicators(nil, one, today); ind.CalvingInterval != 0 {
		t.Fatalf("single calving must yield 0, got %v", ind.CalvingInterval)
	}

	two := append(one, calving("a1", date(2024, time.November, 1)))
	if ind := CalculateIndicators(nil, two, today); ind.CalvingInterval != 13.2 {
		t.Fatalf("expected 13.2, got %v", ind.CalvingInterval)
	}
}

func TestCalculateIndicators_PeriodoServico(t *testing.T) {
	today := date(2024, time.June, 1)

	// O diagnóstico carrega a data da IA copiada na escrita
	dx := diagnosis("a1", date(2024, time.February, 5), DiagnosisPrenhe)
	dx.InseminationDate = datePtr(2024, time.January, 1)

	ind := CalculateIndicators(nil, []Event{dx}, today)
	if ind.AvgServicePeriod != 35 {
		t.Fatalf("expected 35 days, got %v", ind.AvgServicePeriod)
	}
}

func TestCalculateIndicators_DiagnosticoSemIAVinculadaNaoContaPeriodo(t *testing.T) {
	today := date(2024, time.June, 1)

	dx := diagnosis("a1", date(2024, time.February, 5), DiagnosisPrenhe)

	ind := CalculateIndicators(nil, []Event{dx}, today)
	if ind.AvgServicePeriod != 0 {
		t.Fatalf("expected 0 without linked insemination, got %v", ind.AvgServicePeriod)
	}
	if ind.ConceptionRate != 100 {
		t.Fatalf("diagnosis still counts for conception, got %v", ind.ConceptionRate)
	}
}
