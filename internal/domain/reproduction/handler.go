package reproduction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"controle-leiteiro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reproducao", func(rr chi.Router) {
		rr.Post("/eventos", createEventHandler(svc))
		rr.Get("/eventos", listEventsHandler(svc))
		rr.Patch("/eventos/{eventID}", updateEventHandler(svc))

		rr.Get("/indicadores", indicatorsHandler(svc))
		rr.Get("/acoes", actionsHandler(svc))
	})

	// Estado do ciclo derivado do histórico do animal
	r.Get("/animais/{animalID}/ciclo", cycleHandler(svc))
}

type createEventRequest struct {
	AnimalID string    `json:"animal_id"`
	Type     EventType `json:"tipo_evento" enums:"inseminacao,diagnostico,parto,secagem"`

	InseminationDate string `json:"data_inseminacao"` // YYYY-MM-DD
	Bull             string `json:"touro"`
	Technician       string `json:"tecnico"`
	Protocol         string `json:"protocolo"`

	DiagnosisDate   string          `json:"data_diagnostico"` // YYYY-MM-DD
	DiagnosisResult DiagnosisResult `json:"resultado_diagnostico" enums:"prenhe,vazia"`

	CalvingDate string `json:"data_parto_real"` // YYYY-MM-DD
	DryingDate  string `json:"data_secagem"`    // YYYY-MM-DD

	Notes string `json:"observacoes"`
}

type eventResponse struct {
	ID          string      `json:"id"`
	AnimalID    string      `json:"animal_id"`
	OwnerUserID string      `json:"user_id"`
	Type        EventType   `json:"tipo_evento"`
	Status      EventStatus `json:"status"`

	InseminationDate *time.Time `json:"data_inseminacao,omitempty"`
	Bull             string     `json:"touro,omitempty"`
	Technician       string     `json:"tecnico,omitempty"`
	Protocol         string     `json:"protocolo,omitempty"`

	DiagnosisDate   *time.Time      `json:"data_diagnostico,omitempty"`
	DiagnosisResult DiagnosisResult `json:"resultado_diagnostico,omitempty"`

	CalvingDate *time.Time `json:"data_parto_real,omitempty"`
	DryingDate  *time.Time `json:"data_secagem,omitempty"`

	ExpectedCalvingDate *time.Time `json:"data_prevista_parto,omitempty"`

	Notes     string    `json:"observacoes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type updateEventRequest struct {
	// Ponteiros para PATCH real: nil = não tocar.
	InseminationDate *string          `json:"data_inseminacao"`
	Bull             *string          `json:"touro"`
	Technician       *string          `json:"tecnico"`
	Protocol         *string          `json:"protocolo"`
	DiagnosisDate    *string          `json:"data_diagnostico"`
	DiagnosisResult  *DiagnosisResult `json:"resultado_diagnostico"`
	CalvingDate      *string          `json:"data_parto_real"`
	DryingDate       *string          `json:"data_secagem"`
	Notes            *string          `json:"observacoes"`
}

type indicatorsResponse struct {
	ServiceRate      float64 `json:"taxa_servico"`
	ConceptionRate   float64 `json:"taxa_concepcao"`
	PregnancyRate    float64 `json:"taxa_prenhez"`
	CalvingInterval  float64 `json:"intervalo_partos"`
	AvgServicePeriod float64 `json:"periodo_servico"`
}

type actionAnimalSummary struct {
	ID     string `json:"id"`
	Number string `json:"numero"`
	Name   string `json:"nome"`
}

type actionResponse struct {
	Type          ActionType          `json:"tipo"`
	Animal        actionAnimalSummary `json:"animal"`
	EventID       string              `json:"evento_id"`
	DaysRemaining int                 `json:"dias_restantes"`
	Priority      Priority            `json:"prioridade"`
}

type cycleResponse struct {
	Status              string     `json:"status"`
	OpenInseminationID  string     `json:"inseminacao_aberta_id,omitempty"`
	ExpectedCalvingDate *time.Time `json:"data_prevista_parto,omitempty"`
}

// createEventHandler godoc
// @Summary Registrar evento reprodutivo
// @Description Registra inseminação, diagnóstico, parto ou secagem. A inseminação projeta a data prevista do parto (+280 dias); diagnóstico prenhe, parto e secagem atualizam o status do animal.
// @Tags reproducao
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Dados do evento; datas em YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / datas inválidas / regras de negócio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /reproducao/eventos [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateEventInput{
			AnimalID:        req.AnimalID,
			Type:            req.Type,
			Bull:            req.Bull,
			Technician:      req.Technician,
			Protocol:        req.Protocol,
			DiagnosisResult: req.DiagnosisResult,
			Notes:           req.Notes,
		}

		var err error
		if in.InseminationDate, err = parseOptionalDate(req.InseminationDate); err != nil {
			http.Error(w, "data_inseminacao must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.DiagnosisDate, err = parseOptionalDate(req.DiagnosisDate); err != nil {
			http.Error(w, "data_diagnostico must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.CalvingDate, err = parseOptionalDate(req.CalvingDate); err != nil {
			http.Error(w, "data_parto_real must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.DryingDate, err = parseOptionalDate(req.DryingDate); err != nil {
			http.Error(w, "data_secagem must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos reprodutivos
// @Description Lista os eventos do produtor autenticado, do mais recente para o mais antigo. Permite filtrar por animal e tipos.
// @Tags reproducao
// @Produce json
// @Param animal_id query string false "Filtrar por animal"
// @Param tipos query string false "Lista CSV de tipos (ex: inseminacao,diagnostico)"
// @Param limit query int false "Máximo de eventos (1-200). Padrão 50"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /reproducao/eventos [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter := ListFilter{Limit: 50}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				filter.Limit = n
			}
		}
		filter.AnimalID = strings.TrimSpace(r.URL.Query().Get("animal_id"))
		if v := strings.TrimSpace(r.URL.Query().Get("tipos")); v != "" {
			for _, p := range strings.Split(v, ",") {
				t := EventType(strings.TrimSpace(p))
				if ValidEventType(t) {
					filter.Types = append(filter.Types, t)
				}
			}
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// updateEventHandler godoc
// @Summary Editar evento reprodutivo
// @Description Atualização parcial dos campos do tipo do evento. Editar a data da inseminação recalcula a data prevista do parto.
// @Tags reproducao
// @Accept json
// @Produce json
// @Param eventID path string true "ID do evento"
// @Param payload body updateEventRequest true "Campos a atualizar"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "invalid json / datas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /reproducao/eventos/{eventID} [patch]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateEventInput{
			Bull:            req.Bull,
			Technician:      req.Technician,
			Protocol:        req.Protocol,
			DiagnosisResult: req.DiagnosisResult,
			Notes:           req.Notes,
		}

		var err error
		if in.InseminationDate, err = parsePatchDate(req.InseminationDate); err != nil {
			http.Error(w, "data_inseminacao must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.DiagnosisDate, err = parsePatchDate(req.DiagnosisDate); err != nil {
			http.Error(w, "data_diagnostico must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.CalvingDate, err = parsePatchDate(req.CalvingDate); err != nil {
			http.Error(w, "data_parto_real must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.DryingDate, err = parsePatchDate(req.DryingDate); err != nil {
			http.Error(w, "data_secagem must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), claims.UserID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "event not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(updated))
	}
}

// indicatorsHandler godoc
// @Summary Indicadores de fertilidade
// @Description Taxa de serviço, concepção, prenhez, intervalo entre partos e período de serviço médio do rebanho.
// @Tags reproducao
// @Produce json
// @Param hoje query string false "Data de referência YYYY-MM-DD (padrão: hoje)"
// @Success 200 {object} indicatorsResponse
// @Failure 400 {string} string "hoje inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /reproducao/indicadores [get]
func indicatorsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		today, err := parseToday(r)
		if err != nil {
			http.Error(w, "hoje must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		ind, err := svc.Indicators(r.Context(), claims.UserID, today)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, indicatorsResponse{
			ServiceRate:      ind.ServiceRate,
			ConceptionRate:   ind.ConceptionRate,
			PregnancyRate:    ind.PregnancyRate,
			CalvingInterval:  ind.CalvingInterval,
			AvgServicePeriod: ind.AvgServicePeriod,
		})
	}
}

// actionsHandler godoc
// @Summary Ações pendentes do manejo
// @Description Fila ordenada de diagnósticos, secagens e partos pendentes, mais urgentes primeiro.
// @Tags reproducao
// @Produce json
// @Param hoje query string false "Data de referência YYYY-MM-DD (padrão: hoje)"
// @Success 200 {array} actionResponse
// @Failure 400 {string} string "hoje inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /reproducao/acoes [get]
func actionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		today, err := parseToday(r)
		if err != nil {
			http.Error(w, "hoje must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		acts, err := svc.Actions(r.Context(), claims.UserID, today)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]actionResponse, 0, len(acts))
		for _, a := range acts {
			out = append(out, actionResponse{
				Type: a.Type,
				Animal: actionAnimalSummary{
					ID:     a.Animal.ID,
					Number: a.Animal.Number,
					Name:   a.Animal.Name,
				},
				EventID:       a.Event.ID,
				DaysRemaining: a.DaysRemaining,
				Priority:      a.Priority,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// cycleHandler godoc
// @Summary Estado do ciclo reprodutivo
// @Description Status inferido do histórico, inseminação aberta e data prevista do parto do animal.
// @Tags reproducao
// @Produce json
// @Param animalID path string true "ID do animal"
// @Success 200 {object} cycleResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID}/ciclo [get]
func cycleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cs, err := svc.CycleState(r.Context(), claims.UserID, chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		resp := cycleResponse{
			Status:              string(cs.Status),
			ExpectedCalvingDate: cs.ExpectedCalving,
		}
		if cs.OpenInsemination != nil {
			resp.OpenInseminationID = cs.OpenInsemination.ID
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:                  e.ID,
		AnimalID:            e.AnimalID,
		OwnerUserID:         e.OwnerUserID,
		Type:                e.Type,
		Status:              e.Status,
		InseminationDate:    e.InseminationDate,
		Bull:                e.Bull,
		Technician:          e.Technician,
		Protocol:            e.Protocol,
		DiagnosisDate:       e.DiagnosisDate,
		DiagnosisResult:     e.DiagnosisResult,
		CalvingDate:         e.CalvingDate,
		DryingDate:          e.DryingDate,
		ExpectedCalvingDate: e.ExpectedCalvingDate,
		Notes:               e.Notes,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// parseToday lê a data de referência do query param "hoje". O relógio
// de parede só é consultado aqui, na borda HTTP; o núcleo recebe a data
// por parâmetro.
func parseToday(r *http.Request) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get("hoje"))
	if v == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", v)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parsePatchDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// writeJSON está duplicado intencionalmente em handlers de módulos
// distintos, para evitar criar pacotes/helpers compartilhados cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
