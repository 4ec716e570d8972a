package request

type FilmRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=255"`
	DurationInMinutes int      `json:"duration_in_minutes" validate:"required,min=1,max=999"`
	Category          string   `json:"category" validate:"required,min=1,max=100"`
	MinimumAge        int      `json:"minimum_age" validate:"min=0,max=99"`
	Showtimes         []string `json:"showtimes" validate:"required,min=1,dive,required"`
}
