package reproduction

import (
	"testing"
	"time"

	"controle-leiteiro/internal/domain/animals"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func insemination(animalID string, d time.Time) Event {
	expected := ExpectedCalving(d)
	return Event{
		ID:                  "ia-" + d.Format("2006-01-02"),
		AnimalID:            animalID,
		Type:                EventTypeInseminacao,
		InseminationDate:    &d,
		ExpectedCalvingDate: &expected,
	}
}

func diagnosis(animalID string, d time.Time, result DiagnosisResult) Event {
	return Event{
		ID:              "dx-" + d.Format("2006-01-02"),
		AnimalID:        animalID,
		Type:            EventTypeDiagnostico,
		DiagnosisDate:   &d,
		DiagnosisResult: result,
	}
}

func calving(animalID string, d time.Time) Event {
	return Event{
		ID:          "pt-" + d.Format("2006-01-02"),
		AnimalID:    animalID,
		Type:        EventTypeParto,
		CalvingDate: &d,
	}
}

func drying(animalID string, d time.Time) Event {
	return Event{
		ID:         "sc-" + d.Format("2006-01-02"),
		AnimalID:   animalID,
		Type:       EventTypeSecagem,
		DryingDate: &d,
	}
}

func TestExpectedCalving_280Dias(t *testing.T) {
	got := ExpectedCalving(date(2024, time.January, 1))
	want := date(2024, time.October, 7)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDeriveCycleState_SemEventos(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}

	st := DeriveCycleState(a, nil)
	if st.Status != animals.StatusLactante {
		t.Fatalf("expected lactante, got %s", st.Status)
	}
	if st.OpenInsemination != nil || st.ExpectedCalving != nil {
		t.Fatalf("expected empty cycle, got %+v", st)
	}
}

func TestDeriveCycleState_InseminacaoAberta(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{insemination("a1", date(2024, time.January, 1))}

	st := DeriveCycleState(a, evs)
	if st.Status != animals.StatusLactante {
		t.Fatalf("insemination must not change status, got %s", st.Status)
	}
	if st.OpenInsemination == nil {
		t.Fatal("expected open insemination")
	}
	if st.ExpectedCalving == nil || !st.ExpectedCalving.Equal(date(2024, time.October, 7)) {
		t.Fatalf("expected calving 2024-10-07, got %v", st.ExpectedCalving)
	}
}

func TestDeriveCycleState_DiagnosticoPrenheFechaCiclo(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{
		insemination("a1", date(2024, time.January, 1)),
		diagnosis("a1", date(2024, time.February, 5), DiagnosisPrenhe),
	}

	st := DeriveCycleState(a, evs)
	if st.Status != animals.StatusPrenhe {
		t.Fatalf("expected prenhe, got %s", st.Status)
	}
	if st.OpenInsemination != nil {
		t.Fatal("pregnant diagnosis must close the insemination")
	}
	// Sem parto registrado, a previsão continua valendo
	if st.ExpectedCalving == nil || !st.ExpectedCalving.Equal(date(2024, time.October, 7)) {
		t.Fatalf("expected calving 2024-10-07, got %v", st.ExpectedCalving)
	}
}

func TestDeriveCycleState_VaziaPermiteRecobertura(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{
		insemination("a1", date(2024, time.January, 1)),
		diagnosis("a1", date(2024, time.February, 5), DiagnosisVazia),
		insemination("a1", date(2024, time.February, 20)),
	}

	// Ordem do slice é irrelevante
	evs[0], evs[2] = evs[2], evs[0]

	st := DeriveCycleState(a, evs)
	if st.Status != animals.StatusLactante {
		t.Fatalf("vazia must not change status, got %s", st.Status)
	}
	if st.OpenInsemination == nil || !st.OpenInsemination.InseminationDate.Equal(date(2024, time.February, 20)) {
		t.Fatalf("expected the re-service open, got %+v", st.OpenInsemination)
	}
}

func TestDeriveCycleState_CicloCompleto(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{
		insemination("a1", date(2023, time.January, 1)),
		diagnosis("a1", date(2023, time.February, 10), DiagnosisPrenhe),
		drying("a1", date(2023, time.August, 10)),
		calving("a1", date(2023, time.October, 10)),
	}

	st := DeriveCycleState(a, evs)
	if st.Status != animals.StatusLactante {
		t.Fatalf("expected lactante after calving, got %s", st.Status)
	}
	if st.OpenInsemination != nil {
		t.Fatal("expected no open insemination")
	}
	if st.ExpectedCalving != nil {
		t.Fatalf("calving clears the projection, got %v", st.ExpectedCalving)
	}
}

func TestDeriveCycleState_SecagemDeixaSeca(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{
		insemination("a1", date(2024, time.January, 1)),
		diagnosis("a1", date(2024, time.February, 5), DiagnosisPrenhe),
		drying("a1", date(2024, time.August, 8)),
	}

	st := DeriveCycleState(a, evs)
	if st.Status != animals.StatusSeca {
		t.Fatalf("expected seca, got %s", st.Status)
	}
}

func TestDeriveCycleState_IgnoraEventosDeOutroAnimal(t *testing.T) {
	a := animals.Animal{ID: "a1", Status: animals.StatusLactante}
	evs := []Event{insemination("a2", date(2024, time.January, 1))}

	st := DeriveCycleState(a, evs)
	if st.OpenInsemination != nil {
		t.Fatal("events from another animal must be ignored")
	}
}

func TestDaysBetween_ArredondaParaCima(t *testing.T) {
	from := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	if got := daysBetween(from, to); got != 2 {
		t.Fatalf("expected 2 (ceil of 1.5), got %d", got)
	}
	if got := daysBetween(to, from); got != -1 {
		t.Fatalf("expected -1 (ceil of -1.5), got %d", got)
	}
	if got := daysBetween(from, from); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
