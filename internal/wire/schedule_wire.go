package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(r chi.Router, scheduleHandler *adaptor.ScheduleHandler, repo *repository.Repository, log *zap.Logger) {
	// seat maps are public so clients can browse availability before
	// logging in
	r.Get("/api/screenings/{id}/seats", scheduleHandler.GetSeatMap)

	r.Route("/api/admin/screenings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", scheduleHandler.CreateScreening)
		r.Post("/{id}/room", scheduleHandler.AssignRoom)
	})
}
