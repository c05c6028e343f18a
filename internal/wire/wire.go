package wire

import (
	"net/http"
	"time"

	"wellness-tracker/internal/adaptor"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/internal/usecase"
	"wellness-tracker/pkg/middleware"
	"wellness-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds everything the entry point needs to run: the router and
// the background cleanup job, started/stopped explicitly by main.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Cleanup *usecase.SyncCleanup
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	cleanup := usecase.NewSyncCleanup(
		repo.SyncCode,
		time.Duration(config.Sync.CleanupIntervalSeconds)*time.Second,
		logger,
	)

	return &App{
		Router:  router,
		Service: service,
		Cleanup: cleanup,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origins))

	// Apply routes
	wireUser(r, handler.User)
	wireAffirmation(r, handler.Affirmation)
	wireTask(r, handler.Task)
	wireSync(r, handler.Sync)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
