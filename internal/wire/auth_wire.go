package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, repo *repository.Repository, log *zap.Logger) {
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Post("/api/auth/logout", authHandler.Logout)
	})
}
