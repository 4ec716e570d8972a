package response

import (
	"time"

	"cinema-boxoffice/internal/data/entity"
)

type UserResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	BirthDate        string `json:"birth_date"`
	Age              int    `json:"age"`
	Role             string `json:"role"`
	ReservationCount int    `json:"reservation_count"`
}

func UserToResponse(user *entity.User, now time.Time) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		BirthDate:        user.BirthDate,
		Age:              user.Age(now),
		Role:             string(user.Role),
		ReservationCount: user.ReservationCount,
	}
}
