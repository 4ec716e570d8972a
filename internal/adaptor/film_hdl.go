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

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// GetFilms handles GET /api/films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetAllFilms(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /api/films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "id")
	if filmID == "" {
		utils.ResponseBadRequest(w, "Film ID is required", nil)
		return
	}

	film, err := h.service.GetFilm(r.Context(), filmID)
	if err != nil {
		respondServiceError(w, h.log, err, "get film")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// CreateFilm handles POST /api/admin/films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created successfully", film)
}
