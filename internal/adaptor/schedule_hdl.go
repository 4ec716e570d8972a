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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// CreateScreening handles POST /api/admin/screenings
func (h *ScheduleHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening created successfully", screening)
}

// AssignRoom handles POST /api/admin/screenings/{id}/room
func (h *ScheduleHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	var req request.AssignRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.AssignRoom(r.Context(), screeningID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "assign room")
		return
	}

	utils.ResponseSuccess(w, "Room assigned successfully", screening)
}

// GetSeatMap handles GET /api/screenings/{id}/seats
func (h *ScheduleHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), screeningID)
	if err != nil {
		respondServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "Seat map retrieved successfully", seatMap)
}

// GetScreeningsByFilm handles GET /api/films/{id}/screenings
func (h *ScheduleHandler) GetScreeningsByFilm(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "id")
	if filmID == "" {
		utils.ResponseBadRequest(w, "Film ID is required", nil)
		return
	}

	screenings, err := h.service.GetScreeningsByFilm(r.Context(), filmID)
	if err != nil {
		respondServiceError(w, h.log, err, "list screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}
