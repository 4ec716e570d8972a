package wire

import (
	"net/http"

	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/internal/usecase"
	"cinema-boxoffice/pkg/middleware"
	"cinema-boxoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireFilm(r, handler.Film, handler.Schedule, repo, logger)
	wireRoom(r, handler.Room, repo, logger)
	wireSchedule(r, handler.Schedule, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
