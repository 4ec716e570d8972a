package wire

import (
	"cinema-boxoffice/internal/adaptor"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, repo *repository.Repository, log *zap.Logger) {
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)

	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", roomHandler.CreateRoom)
	})
}
