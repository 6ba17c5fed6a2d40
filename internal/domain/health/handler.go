package health

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
	r.Route("/sanitario", func(sr chi.Router) {
		sr.Post("/", createRecordHandler(svc))
		sr.Get("/", listRecordsHandler(svc))
		sr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	AnimalID        string `json:"animal_id"`
	VaccineName     string `json:"nome_vacina"`
	ApplicationDate string `json:"data_aplicacao"` // YYYY-MM-DD
	Dose            string `json:"dose"`
	NextDose        string `json:"proxima_dose"` // YYYY-MM-DD opcional
	Notes           string `json:"observacoes"`
}

type recordResponse struct {
	ID              string     `json:"id"`
	OwnerUserID     string     `json:"user_id"`
	AnimalID        string     `json:"animal_id"`
	VaccineName     string     `json:"nome_vacina"`
	ApplicationDate time.Time  `json:"data_aplicacao"`
	Dose            string     `json:"dose,omitempty"`
	NextDose        *time.Time `json:"proxima_dose,omitempty"`
	Notes           string     `json:"observacoes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// createRecordHandler godoc
// @Summary Registrar manejo sanitário
// @Description Registra vacina/medicamento aplicado, com próxima dose opcional para protocolos de reforço.
// @Tags sanitario
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Registro; datas em YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / datas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Router /sanitario [post]
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

		applied, err := time.Parse("2006-01-02", strings.TrimSpace(req.ApplicationDate))
		if err != nil {
			http.Error(w, "data_aplicacao must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var next *time.Time
		if strings.TrimSpace(req.NextDose) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.NextDose))
			if err != nil {
				http.Error(w, "proxima_dose must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			next = &t
		}

		rec, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			AnimalID:        req.AnimalID,
			VaccineName:     req.VaccineName,
			ApplicationDate: applied,
			Dose:            req.Dose,
			NextDose:        next,
			Notes:           req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar manejo sanitário
// @Description Lista os registros sanitários do produtor, mais recentes primeiro.
// @Tags sanitario
// @Produce json
// @Param limit query int false "Máximo de registros (1-200). Padrão 50"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Router /sanitario [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID, limit)
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

// deleteRecordHandler godoc
// @Summary Excluir registro sanitário
// @Tags sanitario
// @Param recordID path string true "ID do registro"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "record not found"
// @Router /sanitario/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID"), claims.UserID); err != nil {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:              rec.ID,
		OwnerUserID:     rec.OwnerUserID,
		AnimalID:        rec.AnimalID,
		VaccineName:     rec.VaccineName,
		ApplicationDate: rec.ApplicationDate,
		Dose:            rec.Dose,
		NextDose:        rec.NextDose,
		Notes:           rec.Notes,
		CreatedAt:       rec.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente em handlers de módulos
// distintos, para evitar criar pacotes/helpers compartilhados cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
