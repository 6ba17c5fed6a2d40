package alerts

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"controle-leiteiro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/alertas", func(ar chi.Router) {
		ar.Get("/", listAlertsHandler(svc))
		ar.Post("/{alertID}/resolver", resolveAlertHandler(svc))
	})
}

type alertResponse struct {
	ID          string    `json:"id"`
	Type        Type      `json:"tipo"`
	AnimalLabel string    `json:"animal"`
	Description string    `json:"descricao"`
	Date        time.Time `json:"data"`
	Resolved    bool      `json:"resolvido"`
	Priority    Priority  `json:"prioridade"`
}

type resolveResponse struct {
	ID         string    `json:"id"`
	Resolved   bool      `json:"resolvido"`
	ResolvedAt time.Time `json:"resolvido_em"`
}

// listAlertsHandler godoc
// @Summary Listar alertas do rebanho
// @Description Recomputa os alertas de parto, queda de produção e reforço sanitário relativos à data informada.
// @Tags alertas
// @Produce json
// @Param hoje query string false "Data de referência (YYYY-MM-DD). Padrão: hoje"
// @Param tipo query string false "Filtra por tipo (parto, producao, sanitario)"
// @Param status query string false "pendentes, resolvidos ou todos. Padrão: todos"
// @Success 200 {array} alertResponse
// @Failure 400 {string} string "hoje must be YYYY-MM-DD"
// @Failure 401 {string} string "unauthorized"
// @Router /alertas [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
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

		items, err := svc.List(r.Context(), claims.UserID, today)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		tipo := strings.TrimSpace(r.URL.Query().Get("tipo"))
		status := strings.TrimSpace(r.URL.Query().Get("status"))

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			if tipo != "" && string(a.Type) != tipo {
				continue
			}
			if status == "pendentes" && a.Resolved {
				continue
			}
			if status == "resolvidos" && !a.Resolved {
				continue
			}
			out = append(out, alertResponse{
				ID:          a.ID,
				Type:        a.Type,
				AnimalLabel: a.AnimalLabel,
				Description: a.Description,
				Date:        a.Date,
				Resolved:    a.Resolved,
				Priority:    a.Priority,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// resolveAlertHandler godoc
// @Summary Resolver alerta
// @Description Marca o alerta como resolvido. A resolução persiste entre recomputações enquanto a condição continuar valendo.
// @Tags alertas
// @Produce json
// @Param alertID path string true "ID determinístico do alerta"
// @Success 200 {object} resolveResponse
// @Failure 400 {string} string "invalid alert id"
// @Failure 401 {string} string "unauthorized"
// @Router /alertas/{alertID}/resolver [post]
func resolveAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Resolve(r.Context(), claims.UserID, chi.URLParam(r, "alertID"))
		if err != nil {
			http.Error(w, "invalid alert id", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, resolveResponse{
			ID:         res.ID,
			Resolved:   res.Resolved,
			ResolvedAt: res.ResolvedAt,
		})
	}
}

func parseToday(r *http.Request) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get("hoje"))
	if v == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", v)
}

// writeJSON está duplicado intencionalmente em handlers de módulos
// distintos, para evitar criar pacotes/helpers compartilhados cedo demais.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
