package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/usecase"
	"cinema-boxoffice/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Reserve handles POST /api/reservations
func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), userID.String(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

// Cancel handles DELETE /api/reservations/{id}
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	err := h.service.Cancel(r.Context(), userID.String(), reservationID)
	if errors.Is(err, usecase.ErrSeatsNotReleased) {
		// the record is gone even though the grid was not found, so the
		// cancellation itself succeeded
		utils.ResponseSuccess(w, "Reservation cancelled, but its seats could not be released", nil)
		return
	}
	if err != nil {
		respondServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled successfully", nil)
}

// GetMyReservations handles GET /api/reservations
func (h *ReservationHandler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID.String())
	if err != nil {
		respondServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// GetAllReservations handles GET /api/admin/reservations
func (h *ReservationHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.GetAllReservations(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list all reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}
