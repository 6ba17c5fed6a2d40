package reproduction

import (
	"context"
	"errors"
	"testing"
	"time"

	"controle-leiteiro/internal/domain/animals"
)

// -------------------------
// Repos de teste (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testEventRepo struct {
	byID map[string]Event
}

func newTestEventRepo() *testEventRepo {
	return &testEventRepo{byID: map[string]Event{}}
}

func (r *testEventRepo) Create(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testEventRepo) Update(ctx context.Context, e Event) error {
	if _, ok := r.byID[e.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testEventRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, errRepoNotFound
	}
	return e, nil
}

func (r *testEventRepo) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.byID {
		if e.OwnerUserID == ownerUserID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testEventRepo) ListByAnimal(ctx context.Context, animalID string) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.byID {
		if e.AnimalID == animalID {
			out = append(out, e)
		}
	}
	return out, nil
}

type testAnimalRepo struct {
	byID map[string]animals.Animal
}

func newTestAnimalRepo() *testAnimalRepo {
	return &testAnimalRepo{byID: map[string]animals.Animal{}}
}

func (r *testAnimalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testAnimalRepo) Update(ctx context.Context, a animals.Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testAnimalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, errRepoNotFound
	}
	return a, nil
}

func (r *testAnimalRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.OwnerUserID == ownerUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testAnimalRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testAnimalRepo) ListOwners(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, a := range r.byID {
		if _, ok := seen[a.OwnerUserID]; !ok {
			seen[a.OwnerUserID] = struct{}{}
			out = append(out, a.OwnerUserID)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *testAnimalRepo, *testEventRepo) {
	t.Helper()

	animalRepo := newTestAnimalRepo()
	eventRepo := newTestEventRepo()

	animalsSvc := animals.NewService(animalRepo)
	svc := NewService(eventRepo, animalsSvc)
	svc.now = func() time.Time { return date(2024, time.June, 1) }

	return svc, animalRepo, eventRepo
}

func seedAnimal(t *testing.T, repo *testAnimalRepo, status animals.Status) animals.Animal {
	t.Helper()

	a := animals.Animal{
		ID:          "a1",
		OwnerUserID: "produtor-1",
		Number:      "A1",
		Name:        "Mimosa",
		Status:      status,
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("seed animal: %v", err)
	}
	return a
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_InseminacaoProjetaParto(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	e, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
		Bull:             "Sultão",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if e.ExpectedCalvingDate == nil || !e.ExpectedCalvingDate.Equal(date(2024, time.October, 7)) {
		t.Fatalf("expected calving 2024-10-07, got %v", e.ExpectedCalvingDate)
	}
	if e.Status != EventStatusPendente {
		t.Fatalf("expected pendente, got %s", e.Status)
	}

	a, _ := animalRepo.GetByID(context.Background(), "a1")
	if a.Status != animals.StatusLactante {
		t.Fatalf("insemination must not change status, got %s", a.Status)
	}
	if a.NextCalvingDate == nil || !a.NextCalvingDate.Equal(date(2024, time.October, 7)) {
		t.Fatalf("expected animal next calving 2024-10-07, got %v", a.NextCalvingDate)
	}
}

func TestService_Create_DiagnosticoPrenheCopiaDatasDoCiclo(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create insemination: %v", err)
	}

	dx, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:        "a1",
		Type:            EventTypeDiagnostico,
		DiagnosisDate:   datePtr(2024, time.February, 5),
		DiagnosisResult: DiagnosisPrenhe,
	})
	if err != nil {
		t.Fatalf("create diagnosis: %v", err)
	}

	if dx.InseminationDate == nil || !dx.InseminationDate.Equal(date(2024, time.January, 1)) {
		t.Fatalf("expected copied insemination date, got %v", dx.InseminationDate)
	}
	if dx.ExpectedCalvingDate == nil || !dx.ExpectedCalvingDate.Equal(date(2024, time.October, 7)) {
		t.Fatalf("expected copied calving date, got %v", dx.ExpectedCalvingDate)
	}
	if dx.Status != EventStatusPrenhe {
		t.Fatalf("expected prenhe status, got %s", dx.Status)
	}

	a, _ := animalRepo.GetByID(context.Background(), "a1")
	if a.Status != animals.StatusPrenhe {
		t.Fatalf("expected animal prenhe, got %s", a.Status)
	}
}

func TestService_Create_DiagnosticoVaziaNaoMudaAnimal(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create insemination: %v", err)
	}

	dx, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:        "a1",
		Type:            EventTypeDiagnostico,
		DiagnosisDate:   datePtr(2024, time.February, 5),
		DiagnosisResult: DiagnosisVazia,
	})
	if err != nil {
		t.Fatalf("create diagnosis: %v", err)
	}

	if dx.ExpectedCalvingDate != nil {
		t.Fatalf("vazia must not copy calving date, got %v", dx.ExpectedCalvingDate)
	}

	a, _ := animalRepo.GetByID(context.Background(), "a1")
	if a.Status != animals.StatusLactante {
		t.Fatalf("vazia must not change status, got %s", a.Status)
	}
}

func TestService_Create_PartoLimpaPrevisao(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	a := seedAnimal(t, animalRepo, animals.StatusPrenhe)
	a.NextCalvingDate = datePtr(2024, time.October, 7)
	if err := animalRepo.Update(context.Background(), a); err != nil {
		t.Fatalf("seed next calving: %v", err)
	}

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:    "a1",
		Type:        EventTypeParto,
		CalvingDate: datePtr(2024, time.October, 5),
	})
	if err != nil {
		t.Fatalf("create calving: %v", err)
	}

	got, _ := animalRepo.GetByID(context.Background(), "a1")
	if got.Status != animals.StatusLactante {
		t.Fatalf("expected lactante, got %s", got.Status)
	}
	if got.NextCalvingDate != nil {
		t.Fatalf("expected cleared next calving, got %v", got.NextCalvingDate)
	}
}

func TestService_Create_SecagemDeixaSeca(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusPrenhe)

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:   "a1",
		Type:       EventTypeSecagem,
		DryingDate: datePtr(2024, time.August, 8),
	})
	if err != nil {
		t.Fatalf("create drying: %v", err)
	}

	a, _ := animalRepo.GetByID(context.Background(), "a1")
	if a.Status != animals.StatusSeca {
		t.Fatalf("expected seca, got %s", a.Status)
	}
}

func TestService_Create_RecusaAnimalDeOutroDono(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	_, err := svc.Create(context.Background(), "intruso", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Create_RecusaTipoInvalido(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID: "a1",
		Type:     EventType("cio"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RecusaDataFaltando(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	_, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID: "a1",
		Type:     EventTypeInseminacao,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_DataInseminacaoRecalculaPrevisao(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	e, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), e.ID, "produtor-1", UpdateEventInput{
		InseminationDate: datePtr(2024, time.January, 10),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := date(2024, time.October, 16)
	if updated.ExpectedCalvingDate == nil || !updated.ExpectedCalvingDate.Equal(want) {
		t.Fatalf("expected recalculated calving %v, got %v", want, updated.ExpectedCalvingDate)
	}

	a, _ := animalRepo.GetByID(context.Background(), "a1")
	if a.NextCalvingDate == nil || !a.NextCalvingDate.Equal(want) {
		t.Fatalf("expected resynced animal calving %v, got %v", want, a.NextCalvingDate)
	}
}

func TestService_Update_RecusaEventoDeOutroDono(t *testing.T) {
	svc, animalRepo, _ := newTestService(t)
	seedAnimal(t, animalRepo, animals.StatusLactante)

	e, err := svc.Create(context.Background(), "produtor-1", CreateEventInput{
		AnimalID:         "a1",
		Type:             EventTypeInseminacao,
		InseminationDate: datePtr(2024, time.January, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), e.ID, "intruso", UpdateEventInput{
		Bull: strPtr("Ladrão"),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
