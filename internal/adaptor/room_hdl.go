package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/usecase"
	"cinema-boxoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetAllRooms(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "Rooms retrieved successfully", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomID)
	if err != nil {
		respondServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "Room retrieved successfully", room)
}

// CreateRoom handles POST /api/admin/rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}
