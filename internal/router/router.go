package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "controle-leiteiro/internal/adapters/storage/memory"
	pg "controle-leiteiro/internal/adapters/storage/postgres"
	"controle-leiteiro/internal/domain/alerts"
	"controle-leiteiro/internal/domain/animals"
	"controle-leiteiro/internal/domain/health"
	"controle-leiteiro/internal/domain/production"
	"controle-leiteiro/internal/domain/reproduction"
	"controle-leiteiro/internal/middleware"
	"controle-leiteiro/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "controle-leiteiro/docs"
)

// Services agrupa os serviços de todos os módulos, já ligados entre si.
type Services struct {
	Animals      *animals.Service
	Reproduction *reproduction.Service
	Production   *production.Service
	Health       *health.Service
	Alerts       *alerts.Service
}

// NewServices monta os serviços em cima de Postgres quando db != nil,
// ou in-memory caso contrário.
func NewServices(db *sql.DB) *Services {
	var (
		animalRepo       animals.Repository
		reproductionRepo reproduction.Repository
		productionRepo   production.Repository
		healthRepo       health.Repository
		alertRepo        alerts.Repository
	)

	if db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		reproductionRepo = pg.NewReproductionRepo(db)
		productionRepo = pg.NewProductionRepo(db)
		healthRepo = pg.NewHealthRepo(db)
		alertRepo = pg.NewAlertsRepo(db)
	} else {
		animalRepo = mem.NewAnimalRepo()
		reproductionRepo = mem.NewReproductionRepo()
		productionRepo = mem.NewProductionRepo()
		healthRepo = mem.NewHealthRepo()
		alertRepo = mem.NewAlertRepo()
	}

	animalsSvc := animals.NewService(animalRepo)
	reproductionSvc := reproduction.NewService(reproductionRepo, animalsSvc)
	productionSvc := production.NewService(productionRepo)
	healthSvc := health.NewService(healthRepo)
	alertsSvc := alerts.NewService(alertRepo, animalsSvc, productionSvc, healthSvc)

	return &Services{
		Animals:      animalsSvc,
		Reproduction: reproductionSvc,
		Production:   productionSvc,
		Health:       healthSvc,
		Alerts:       alertsSvc,
	}
}

type Options struct {
	AuthVerifier auth.AuthVerifier // pode ser nil (modo dev)

	// Opcional: se vem, usa Postgres. Se não, in-memory.
	DB *sql.DB

	// Opcional: serviços já montados (p.ex. compartilhados com o
	// scheduler). Se nil, monta a partir de DB.
	Services *Services
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	svcs := opts.Services
	if svcs == nil {
		// Se não passam DB explícito, tenta por env (para dev/handoff)
		db := opts.DB
		if db == nil {
			if dsn := os.Getenv("DB_DSN"); dsn != "" {
				opened, err := pg.Open(dsn)
				if err == nil {
					db = opened
				}
			}
		}
		svcs = NewServices(db)
	}

	// Rotas por módulo
	animals.RegisterRoutes(r, svcs.Animals)
	reproduction.RegisterRoutes(r, svcs.Reproduction)
	production.RegisterRoutes(r, svcs.Production)
	health.RegisterRoutes(r, svcs.Health)
	alerts.RegisterRoutes(r, svcs.Alerts)

	return r
}
