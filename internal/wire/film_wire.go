package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFilm(r chi.Router, filmHandler *adaptor.FilmHandler, scheduleHandler *adaptor.ScheduleHandler, repo *repository.Repository, log *zap.Logger) {
	// catalogue is public
	r.Get("/api/films", filmHandler.GetFilms)
	r.Get("/api/films/{id}", filmHandler.GetFilmByID)
	r.Get("/api/films/{id}/screenings", scheduleHandler.GetScreeningsByFilm)

	r.Route("/api/admin/films", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", filmHandler.CreateFilm)
	})
}
