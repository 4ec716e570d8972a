package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services.
var (
	// ErrNotFound wraps any missing film/room/screening/user/reservation.
	ErrNotFound = errors.New("not found")

	// ErrEmptySelection rejects a reservation request with no seats.
	ErrEmptySelection = errors.New("no seats selected")

	// ErrGridMissing means the screening has no room assigned yet, so no
	// seating grid exists.
	ErrGridMissing = errors.New("no seating grid for this screening")

	// ErrSeatsNotReleased is returned by Cancel when the reservation
	// record was deleted but its seats could not be freed because the
	// grid no longer exists.
	ErrSeatsNotReleased = errors.New("reservation deleted but seats were not released")

	// ErrNotOwner rejects operating on another user's reservation.
	ErrNotOwner = errors.New("reservation belongs to another user")
)

// AgeRestrictedError rejects a reservation for a film the user is too
// young to watch.
type AgeRestrictedError struct {
	Required int
	Actual   int
}

func (e *AgeRestrictedError) Error() string {
	return fmt.Sprintf("minimum age is %d, user is %d", e.Required, e.Actual)
}

// SeatUnavailableError identifies the first requested seat that is
// already occupied.
type SeatUnavailableError struct {
	Seat string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is not available", e.Seat)
}

// DuplicateSeatError identifies a seat listed twice in one request.
type DuplicateSeatError struct {
	Seat string
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("seat %s selected more than once", e.Seat)
}

// ScheduleConflictError explains why a screening cannot join a room:
// it would overlap an existing screening's slot extended by the
// changeover buffer.
type ScheduleConflictError struct {
	FilmTitle string
	Start     string
	End       string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("room is taken by %q from %s to %s (15 min changeover required)",
		e.FilmTitle, e.Start, e.End)
}

// StorageError marks a repository failure. Always fatal to the current
// operation; the in-memory mutation is discarded before it surfaces.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
