package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"controle-leiteiro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animais", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Number          string `json:"numero"`
	Name            string `json:"nome"`
	Breed           string `json:"raca"`
	BirthDate       string `json:"data_nascimento"` // YYYY-MM-DD opcional
	Status          Status `json:"status" enums:"lactante,seca,prenhe"`
	NextCalvingDate string `json:"data_proximo_parto"` // YYYY-MM-DD opcional
}

type animalResponse struct {
	ID              string     `json:"id"`
	OwnerUserID     string     `json:"user_id"`
	Number          string     `json:"numero"`
	Name            string     `json:"nome"`
	Breed           string     `json:"raca"`
	BirthDate       *time.Time `json:"data_nascimento,omitempty"`
	Status          Status     `json:"status"`
	NextCalvingDate *time.Time `json:"data_proximo_parto,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type updateAnimalRequest struct {
	// Ponteiros para PATCH real: nil = não tocar.
	Number *string `json:"numero"`
	Name   *string `json:"nome"`
	Breed  *string `json:"raca"`
	Status *Status `json:"status"`
	// datas tratadas via raw map para diferenciar ausente de null
}

// createAnimalHandler godoc
// @Summary Cadastrar animal
// @Description Cadastra uma nova vaca no rebanho do produtor autenticado. Autenticação: `X-Debug-User-ID` (dev) ou `Authorization: Bearer <token>` (prod).
// @Tags animais
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Dados do animal; datas em YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / datas inválidas / regras de negócio"
// @Failure 401 {string} string "unauthorized"
// @Router /animais [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseOptionalDate(req.BirthDate)
		if err != nil {
			http.Error(w, "data_nascimento must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		np, err := parseOptionalDate(req.NextCalvingDate)
		if err != nil {
			http.Error(w, "data_proximo_parto must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Number:          req.Number,
			Name:            req.Name,
			Breed:           req.Breed,
			BirthDate:       bd,
			Status:          req.Status,
			NextCalvingDate: np,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animais
// @Description Lista os animais do produtor autenticado.
// @Tags animais
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animais [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalhar animal
// @Tags animais
// @Produce json
// @Param animalID path string true "ID do animal"
// @Success 200 {object} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil || a.OwnerUserID != claims.UserID {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Atualizar animal
// @Description Atualização parcial. Datas aceitam null para limpar o campo.
// @Tags animais
// @Accept json
// @Produce json
// @Param animalID path string true "ID do animal"
// @Param payload body updateAnimalRequest true "Campos a atualizar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		animalID := chi.URLParam(r, "animalID")

		// Decodifica para map primeiro, para detectar presença dos
		// campos de data (null = limpar, ausente = não tocar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateAnimalRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		bd, err := patchDate(raw, "data_nascimento")
		if err != nil {
			http.Error(w, "data_nascimento must be YYYY-MM-DD or null", http.StatusBadRequest)
			return
		}
		np, err := patchDate(raw, "data_proximo_parto")
		if err != nil {
			http.Error(w, "data_proximo_parto must be YYYY-MM-DD or null", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), animalID, claims.UserID, UpdateInput{
			Number:          req.Number,
			Name:            req.Name,
			Breed:           req.Breed,
			Status:          req.Status,
			BirthDate:       bd,
			NextCalvingDate: np,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "animal not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// deleteAnimalHandler godoc
// @Summary Excluir animal
// @Description Remove o animal do rebanho. Os eventos do animal não são removidos em cascata.
// @Tags animais
// @Param animalID path string true "ID do animal"
// @Success 204 {string} string ""
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animais/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID"), claims.UserID); err != nil {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:              a.ID,
		OwnerUserID:     a.OwnerUserID,
		Number:          a.Number,
		Name:            a.Name,
		Breed:           a.Breed,
		BirthDate:       a.BirthDate,
		Status:          a.Status,
		NextCalvingDate: a.NextCalvingDate,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
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

func patchDate(raw map[string]json.RawMessage, key string) (OptionalDate, error) {
	v, exists := raw[key]
	if !exists {
		return OptionalDate{}, nil
	}
	if string(v) == "null" {
		return OptionalDate{Present: true}, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return OptionalDate{}, err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return OptionalDate{}, err
	}
	return OptionalDate{Present: true, Value: &t}, nil
}

// writeJSON está duplicado intencionalmente em handlers de módulos
// distintos, para evitar criar pacotes/helpers compartilhados cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
