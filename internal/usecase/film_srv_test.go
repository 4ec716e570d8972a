package usecase

import (
	"context"
	"testing"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFilm(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := NewFilmService(f.repo, testLogger(), fixedClock)

	resp, err := svc.CreateFilm(ctx, &request.FilmRequest{
		Title:             "Blade Runner",
		DurationInMinutes: 117,
		Category:          "Sci-Fi",
		MinimumAge:        16,
		Showtimes:         []string{"14:00", "21:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner", resp.Title)
	assert.Equal(t, []string{"14:00", "21:30"}, resp.Showtimes)

	t.Run("rejects malformed showtime", func(t *testing.T) {
		_, err := svc.CreateFilm(ctx, &request.FilmRequest{
			Title:             "Bad Times",
			DurationInMinutes: 90,
			Category:          "Drama",
			Showtimes:         []string{"25:00"},
		})
		var formatErr *entity.FormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("rejects duplicate showtime", func(t *testing.T) {
		_, err := svc.CreateFilm(ctx, &request.FilmRequest{
			Title:             "Twice",
			DurationInMinutes: 90,
			Category:          "Drama",
			Showtimes:         []string{"14:00", "14:00"},
		})
		var validationErr *entity.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("lookup round trip", func(t *testing.T) {
		found, err := svc.GetFilm(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.Title, found.Title)

		films, err := svc.GetAllFilms(ctx)
		require.NoError(t, err)
		assert.Len(t, films, 1)
	})
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	svc := NewRoomService(f.repo, testLogger(), fixedClock)

	resp, err := svc.CreateRoom(ctx, &request.RoomRequest{
		Number:    7,
		TotalRows: 10,
		VIPRows:   3,
		Columns:   12,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Number)
	assert.Equal(t, 3, resp.VIPRows)
	assert.Empty(t, resp.ScreeningIDs)

	t.Run("vip rows cannot exceed total rows", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, &request.RoomRequest{
			Number:    8,
			TotalRows: 4,
			VIPRows:   5,
			Columns:   6,
		})
		var validationErr *entity.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("duplicate room number rejected", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, &request.RoomRequest{
			Number:    7,
			TotalRows: 5,
			VIPRows:   1,
			Columns:   5,
		})
		assert.ErrorContains(t, err, "already exists")
	})
}
