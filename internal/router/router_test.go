package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"controle-leiteiro/internal/router"
)

func TestHTTP_EndToEnd_CicloReprodutivo(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Services:     router.NewServices(nil),
	}))
	defer ts.Close()

	ownerID := "produtor-1"
	otherID := "produtor-2"

	// 1) Produtor cadastra o animal
	animalID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"numero": "A1",
		"nome":   "Mimosa",
		"raca":   "girolando",
		"status": "lactante",
	})

	// 2) Outro produtor não enxerga o animal
	{
		st, _ := doReq(t, ts.URL, "GET", "/animais/"+animalID, otherID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other owner, got %d", st)
		}
	}

	// 3) Inseminação projeta o parto para +280 dias
	{
		st, body := doReq(t, ts.URL, "POST", "/reproducao/eventos", ownerID, map[string]any{
			"animal_id":        animalID,
			"tipo_evento":      "inseminacao",
			"data_inseminacao": "2024-01-01",
			"touro":            "Sultão",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create insemination, got %d body=%s", st, string(body))
		}

		var resp struct {
			ExpectedCalvingDate string `json:"data_prevista_parto"`
		}
		_ = json.Unmarshal(body, &resp)
		if !strings.HasPrefix(resp.ExpectedCalvingDate, "2024-10-07") {
			t.Fatalf("expected calving 2024-10-07, got %q", resp.ExpectedCalvingDate)
		}
	}

	// 4) O animal herda a data prevista do parto
	{
		st, body := doReq(t, ts.URL, "GET", "/animais/"+animalID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}

		var resp struct {
			NextCalvingDate string `json:"data_proximo_parto"`
		}
		_ = json.Unmarshal(body, &resp)
		if !strings.HasPrefix(resp.NextCalvingDate, "2024-10-07") {
			t.Fatalf("expected animal next calving 2024-10-07, got %q", resp.NextCalvingDate)
		}
	}

	// 5) Aos 35 dias da IA o diagnóstico está na janela, prioridade media
	{
		acts := listActions(t, ts.URL, ownerID, "2024-02-05")
		if len(acts) != 1 {
			t.Fatalf("expected 1 pending action, got %d", len(acts))
		}
		if acts[0].Type != "diagnostico" || acts[0].DaysRemaining != 10 || acts[0].Priority != "media" {
			t.Fatalf("unexpected action: %+v", acts[0])
		}
	}

	// 6) Aos 42 dias a prioridade sobe para alta
	{
		acts := listActions(t, ts.URL, ownerID, "2024-02-12")
		if len(acts) != 1 {
			t.Fatalf("expected 1 pending action, got %d", len(acts))
		}
		if acts[0].DaysRemaining != 3 || acts[0].Priority != "alta" {
			t.Fatalf("unexpected action: %+v", acts[0])
		}
	}

	// 7) Diagnóstico prenhe fecha a inseminação e copia as datas do ciclo
	{
		st, body := doReq(t, ts.URL, "POST", "/reproducao/eventos", ownerID, map[string]any{
			"animal_id":             animalID,
			"tipo_evento":           "diagnostico",
			"data_diagnostico":      "2024-02-05",
			"resultado_diagnostico": "prenhe",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create diagnosis, got %d body=%s", st, string(body))
		}

		var resp struct {
			InseminationDate    string `json:"data_inseminacao"`
			ExpectedCalvingDate string `json:"data_prevista_parto"`
		}
		_ = json.Unmarshal(body, &resp)
		if !strings.HasPrefix(resp.InseminationDate, "2024-01-01") {
			t.Fatalf("expected copied insemination date, got %q", resp.InseminationDate)
		}
		if !strings.HasPrefix(resp.ExpectedCalvingDate, "2024-10-07") {
			t.Fatalf("expected copied calving date, got %q", resp.ExpectedCalvingDate)
		}
	}

	// 8) Ciclo derivado: prenhe, sem inseminação aberta
	{
		st, body := doReq(t, ts.URL, "GET", "/animais/"+animalID+"/ciclo", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cycle, got %d body=%s", st, string(body))
		}

		var resp struct {
			Status              string `json:"status"`
			OpenInseminationID  string `json:"inseminacao_aberta_id"`
			ExpectedCalvingDate string `json:"data_prevista_parto"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "prenhe" {
			t.Fatalf("expected status prenhe, got %q", resp.Status)
		}
		if resp.OpenInseminationID != "" {
			t.Fatalf("expected closed insemination, got %q", resp.OpenInseminationID)
		}
		if !strings.HasPrefix(resp.ExpectedCalvingDate, "2024-10-07") {
			t.Fatalf("expected calving 2024-10-07, got %q", resp.ExpectedCalvingDate)
		}
	}

	// 9) A 6 dias do parto o alerta aparece com prioridade media
	{
		items := listAlerts(t, ts.URL, ownerID, "2024-10-01")
		al := findAlert(t, items, "parto-"+animalID)
		if al.Priority != "media" || al.Resolved {
			t.Fatalf("unexpected alert: %+v", al)
		}
	}

	// 10) Resolver persiste entre recomputações
	{
		st, body := doReq(t, ts.URL, "POST", "/alertas/parto-"+animalID+"/resolver", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 resolve alert, got %d body=%s", st, string(body))
		}

		items := listAlerts(t, ts.URL, ownerID, "2024-10-01")
		al := findAlert(t, items, "parto-"+animalID)
		if !al.Resolved {
			t.Fatalf("expected resolved alert, got %+v", al)
		}
	}

	// 11) Parto real: animal volta a lactante e o alerta some
	{
		st, body := doReq(t, ts.URL, "POST", "/reproducao/eventos", ownerID, map[string]any{
			"animal_id":       animalID,
			"tipo_evento":     "parto",
			"data_parto_real": "2024-10-05",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create calving, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/animais/"+animalID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d", st)
		}

		var resp struct {
			Status          string  `json:"status"`
			NextCalvingDate *string `json:"data_proximo_parto"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "lactante" {
			t.Fatalf("expected lactante after calving, got %q", resp.Status)
		}
		if resp.NextCalvingDate != nil {
			t.Fatalf("expected cleared next calving, got %v", *resp.NextCalvingDate)
		}

		for _, al := range listAlerts(t, ts.URL, ownerID, "2024-10-06") {
			if al.ID == "parto-"+animalID {
				t.Fatalf("calving alert should be gone, got %+v", al)
			}
		}
	}
}

func TestHTTP_AlertaSanitario(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Services:     router.NewServices(nil),
	}))
	defer ts.Close()

	ownerID := "produtor-1"

	animalID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"numero": "B7",
		"nome":   "Estrela",
	})

	st, body := doReq(t, ts.URL, "POST", "/sanitario", ownerID, map[string]any{
		"animal_id":      animalID,
		"nome_vacina":    "Brucelose",
		"data_aplicacao": "2024-02-01",
		"proxima_dose":   "2024-03-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create sanitary record, got %d body=%s", st, string(body))
	}

	var rec struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &rec)

	// Dentro da janela de 7 dias => media
	{
		items := listAlerts(t, ts.URL, ownerID, "2024-02-25")
		al := findAlert(t, items, "sanitario-"+rec.ID)
		if al.Priority != "media" {
			t.Fatalf("expected media priority, got %+v", al)
		}
	}

	// Reforço vencido => alta
	{
		items := listAlerts(t, ts.URL, ownerID, "2024-03-05")
		al := findAlert(t, items, "sanitario-"+rec.ID)
		if al.Priority != "alta" {
			t.Fatalf("expected alta priority for overdue booster, got %+v", al)
		}
	}

	// Fora da janela => sem alerta
	{
		for _, al := range listAlerts(t, ts.URL, ownerID, "2024-02-10") {
			if al.ID == "sanitario-"+rec.ID {
				t.Fatalf("booster alert should not fire yet, got %+v", al)
			}
		}
	}
}

func TestHTTP_IndicadoresSemEventos(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Services:     router.NewServices(nil),
	}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/reproducao/indicadores?hoje=2024-06-01", "produtor-sem-dados", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 indicators, got %d body=%s", st, string(body))
	}

	var resp struct {
		ServiceRate    float64 `json:"taxa_servico"`
		ConceptionRate float64 `json:"taxa_concepcao"`
		PregnancyRate  float64 `json:"taxa_prenhez"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ServiceRate != 0 || resp.ConceptionRate != 0 || resp.PregnancyRate != 0 {
		t.Fatalf("expected zero indicators for empty herd, got %+v", resp)
	}
}

func TestHTTP_SemClaims(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Services:     router.NewServices(nil),
	}))
	defer ts.Close()

	// Sem X-Debug-User-ID => 401
	st, _ := doReq(t, ts.URL, "GET", "/animais", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", st)
	}
}

type actionItem struct {
	Type          string `json:"tipo"`
	DaysRemaining int    `json:"dias_restantes"`
	Priority      string `json:"prioridade"`
}

type alertItem struct {
	ID          string `json:"id"`
	Type        string `json:"tipo"`
	Description string `json:"descricao"`
	Resolved    bool   `json:"resolvido"`
	Priority    string `json:"prioridade"`
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animais", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func listActions(t *testing.T, baseURL, userID, today string) []actionItem {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/reproducao/acoes?hoje="+today, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list actions, got %d body=%s", st, string(body))
	}

	var out []actionItem
	_ = json.Unmarshal(body, &out)
	return out
}

func listAlerts(t *testing.T, baseURL, userID, today string) []alertItem {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/alertas?hoje="+today, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list alerts, got %d body=%s", st, string(body))
	}

	var out []alertItem
	_ = json.Unmarshal(body, &out)
	return out
}

func findAlert(t *testing.T, items []alertItem, id string) alertItem {
	t.Helper()

	for _, al := range items {
		if al.ID == id {
			return al
		}
	}
	t.Fatalf("alert %s not found in %+v", id, items)
	return alertItem{}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
