package entity

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	Base
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	BirthDate    string   `db:"birth_date"` // YYYY-MM-DD
	Role         UserRole `db:"role"`
	// Denormalized count of non-cancelled reservations, maintained by
	// the reservation engine.
	ReservationCount int `db:"reservation_count"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Age computes the user's age at the given instant. A birthday not yet
// reached this year subtracts one. An unparsable birth date counts as 0.
func (u *User) Age(now time.Time) int {
	birth, err := time.Parse("2006-01-02", u.BirthDate)
	if err != nil {
		return 0
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
