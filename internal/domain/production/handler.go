package production

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"controle-leiteiro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/producao", func(pr chi.Router) {
		pr.Post("/", createRecordHandler(svc))
		pr.Get("/", listRecordsHandler(svc))
	})
}

type createRecordRequest struct {
	AnimalID string  `json:"animal_id"`
	Date     string  `json:"data"` // YYYY-MM-DD
	Period   Period  `json:"periodo" enums:"manha,tarde,noite"`
	Quantity float64 `json:"quantidade"` // litros
}

type recordResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"user_id"`
	AnimalID    string    `json:"animal_id"`
	Date        time.Time `json:"data"`
	Period      Period    `json:"periodo"`
	Quantity    float64   `json:"quantidade"`
	CreatedAt   time.Time `json:"created_at"`
}

// createRecordHandler godoc
// @Summary Registrar ordenha
// @Description Registra a quantidade de leite de um animal em um período do dia.
// @Tags producao
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Registro; data em YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / data inválida / quantidade negativa"
// @Failure 401 {string} string "unauthorized"
// @Router /producao [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "data must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID: req.AnimalID,
			Date:     d,
			Period:   req.Period,
			Quantity: req.Quantity,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar registros de produção
// @Description Lista os registros de ordenha do produtor, mais recentes primeiro. Filtros por animal e intervalo de datas.
// @Tags producao
// @Produce json
// @Param animal_id query string false "Filtrar por animal"
// @Param de query string false "Data mínima YYYY-MM-DD"
// @Param ate query string false "Data máxima YYYY-MM-DD"
// @Param limit query int false "Máximo de registros (1-500). Padrão 100"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /producao [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter := ListFilter{Limit: 100}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				filter.Limit = n
			}
		}
		filter.AnimalID = strings.TrimSpace(r.URL.Query().Get("animal_id"))

		if v := strings.TrimSpace(r.URL.Query().Get("de")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, "de must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.From = &t
		}
		if v := strings.TrimSpace(r.URL.Query().Get("ate")); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				http.Error(w, "ate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			filter.To = &t
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		OwnerUserID: rec.OwnerUserID,
		AnimalID:    rec.AnimalID,
		Date:        rec.Date,
		Period:      rec.Period,
		Quantity:    rec.Quantity,
		CreatedAt:   rec.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente em handlers de módulos
// distintos, para evitar criar pacotes/helpers compartilhados cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
