package response

import "cinema-boxoffice/internal/data/entity"

type FilmResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	DurationInMinutes int      `json:"duration_in_minutes"`
	Category          string   `json:"category"`
	MinimumAge        int      `json:"minimum_age"`
	Showtimes         []string `json:"showtimes"`
}

func FilmToResponse(film *entity.Film) FilmResponse {
	return FilmResponse{
		ID:                film.ID.String(),
		Title:             film.Title,
		DurationInMinutes: film.DurationInMinutes,
		Category:          film.Category,
		MinimumAge:        film.MinimumAge,
		Showtimes:         film.Showtimes,
	}
}
