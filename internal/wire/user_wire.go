package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, repo *repository.Repository, log *zap.Logger) {
	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
	})
}
