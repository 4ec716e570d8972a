package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler, repo *repository.Repository, log *zap.Logger) {
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", reservationHandler.Reserve)
		r.Get("/", reservationHandler.GetMyReservations)
		r.Delete("/{id}", reservationHandler.Cancel)
	})

	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", reservationHandler.GetAllReservations)
	})
}
