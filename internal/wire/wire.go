package wire

import (
	"net/http"

	"ride-api/internal/adaptor"
	"ride-api/internal/data/repository"
	"ride-api/internal/usecase"
	"ride-api/pkg/middleware"
	"ride-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(chimiddleware.StripSlashes)

	// every route below sits behind the admin gate unless its path is public
	r.Use(middleware.Authenticate(repo.Session, repo.User, logger))
	r.Use(middleware.AccessControl(config.Access, logger))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireRide(r, handler.Ride)
	wireRideEvent(r, handler.RideEvent)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
