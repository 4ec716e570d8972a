package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reservationFixture seeds a 5x8 room with 2 VIP rows, one film and
// one assigned screening, plus a 26 year old user.
type reservationFixture struct {
	*fixture
	svc       ReservationService
	user      *entity.User
	room      *entity.Room
	screening *entity.Screening
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	f := newFixture()
	film := f.addFilm("Heat", 120, 16, "20:00")
	room := f.addRoom(1, 5, 2, 8)
	screening := f.addScreening(film, "20:00")
	f.assignScreening(room, screening)
	user := f.addUser("2000-03-10")

	return &reservationFixture{
		fixture:   f,
		svc:       NewReservationService(f.repo, testLogger(), fixedClock),
		user:      user,
		room:      room,
		screening: screening,
	}
}

func (rf *reservationFixture) reserve(seats ...string) (*request.ReservationRequest, error) {
	req := &request.ReservationRequest{
		ScreeningID: rf.screening.ID.String(),
		Seats:       seats,
	}
	_, err := rf.svc.Reserve(context.Background(), rf.user.ID.String(), req)
	return req, err
}

// storedCount reads the persisted reservation counter, not the stale
// fixture pointer.
func (rf *reservationFixture) storedCount(t *testing.T) int {
	t.Helper()
	user, err := rf.users.FindByID(context.Background(), rf.user.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.ReservationCount
}

func (rf *reservationFixture) grid(t *testing.T) entity.SeatGrid {
	t.Helper()
	seating, err := rf.seating.Find(context.Background(), rf.room.ID, rf.screening.ID)
	require.NoError(t, err)
	require.NotNil(t, seating)
	return seating.Grid
}

func TestQuote(t *testing.T) {
	room := &entity.Room{TotalRows: 5, VIPRows: 2, Columns: 8}
	svc := NewReservationService(newFixture().repo, testLogger(), fixedClock)

	t.Run("mixed selection", func(t *testing.T) {
		// A and B are VIP rows, C is normal
		quote, err := svc.Quote(room, []string{"A1", "B8", "C3"})
		require.NoError(t, err)
		assert.Equal(t, 2*PriceVIP+PriceNormal, quote.Total)
		assert.Equal(t, 39, quote.Total)
		assert.Equal(t, 1, quote.NormalSeats)
		assert.Equal(t, 2, quote.VIPSeats)
	})

	t.Run("no vip rows prices everything normal", func(t *testing.T) {
		flat := &entity.Room{TotalRows: 3, VIPRows: 0, Columns: 4}
		quote, err := svc.Quote(flat, []string{"A1", "C4"})
		require.NoError(t, err)
		assert.Equal(t, 2*PriceNormal, quote.Total)
		assert.Equal(t, 0, quote.VIPSeats)
	})

	t.Run("bad label", func(t *testing.T) {
		_, err := svc.Quote(room, []string{"A1", "??"})
		var formatErr *entity.FormatError
		assert.ErrorAs(t, err, &formatErr)
	})
}

func TestReserveHappyPath(t *testing.T) {
	rf := newReservationFixture(t)

	req := &request.ReservationRequest{
		ScreeningID: rf.screening.ID.String(),
		Seats:       []string{"A1", "B8", "C3"},
	}
	resp, err := rf.svc.Reserve(context.Background(), rf.user.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, 39, resp.TotalPrice)
	assert.Equal(t, 1, resp.NormalSeats)
	assert.Equal(t, 2, resp.VIPSeats)
	assert.Equal(t, []string{"A1", "B8", "C3"}, resp.Seats)
	assert.Equal(t, "Heat", resp.FilmTitle)
	assert.Equal(t, 1, resp.RoomNumber)
	assert.True(t, strings.HasPrefix(resp.Code, "RES-20260829-"), "code %s", resp.Code)

	grid := rf.grid(t)
	assert.Equal(t, 40-3, grid.CountAvailable())
	assert.Equal(t, entity.SeatOccupied, grid.StateAt(entity.Coord{Row: 0, Col: 0}))
	assert.Equal(t, entity.SeatOccupied, grid.StateAt(entity.Coord{Row: 1, Col: 7}))
	assert.Equal(t, entity.SeatOccupied, grid.StateAt(entity.Coord{Row: 2, Col: 2}))

	assert.Equal(t, 1, rf.storedCount(t))
	stored, _ := rf.reservation.FindByUserID(context.Background(), rf.user.ID)
	require.Len(t, stored, 1)
}

func TestReservePreconditions(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		rf := newReservationFixture(t)
		_, err := rf.reserve()
		assert.True(t, errors.Is(err, ErrEmptySelection))
	})

	t.Run("age gate checked before seat validity", func(t *testing.T) {
		rf := newReservationFixture(t)
		// 15 at screening time, film requires 16. The seat label is
		// garbage, proving the age check fires first.
		rf.user.BirthDate = "2010-09-15"
		_, err := rf.reserve("not-a-seat")

		var ageErr *AgeRestrictedError
		require.ErrorAs(t, err, &ageErr)
		assert.Equal(t, 16, ageErr.Required)
		assert.Equal(t, 15, ageErr.Actual)
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
	})

	t.Run("sixteenth birthday passes the gate", func(t *testing.T) {
		rf := newReservationFixture(t)
		rf.user.BirthDate = "2010-08-29"
		_, err := rf.reserve("A1")
		assert.NoError(t, err)
	})

	t.Run("unparseable label", func(t *testing.T) {
		rf := newReservationFixture(t)
		_, err := rf.reserve("A1", "7G")
		var formatErr *entity.FormatError
		assert.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
	})

	t.Run("out of bounds label", func(t *testing.T) {
		rf := newReservationFixture(t)
		_, err := rf.reserve("F1")
		var oob *entity.OutOfBoundsError
		assert.ErrorAs(t, err, &oob)
	})

	t.Run("occupied seat", func(t *testing.T) {
		rf := newReservationFixture(t)
		_, err := rf.reserve("A1")
		require.NoError(t, err)

		_, err = rf.reserve("A1", "A2")
		var unavailable *SeatUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "A1", unavailable.Seat)
		// A2 must not be touched by the failed request
		assert.Equal(t, 39, rf.grid(t).CountAvailable())
	})

	t.Run("duplicate seat in one request", func(t *testing.T) {
		rf := newReservationFixture(t)
		_, err := rf.reserve("A1", "A1")
		var dup *DuplicateSeatError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "A1", dup.Seat)
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
		assert.Equal(t, 0, rf.storedCount(t))
	})

	t.Run("no grid assigned", func(t *testing.T) {
		rf := newReservationFixture(t)
		orphan := rf.addScreening(rf.films.films[rf.screening.FilmID], "20:00")
		req := &request.ReservationRequest{ScreeningID: orphan.ID.String(), Seats: []string{"A1"}}
		_, err := rf.svc.Reserve(context.Background(), rf.user.ID.String(), req)
		assert.True(t, errors.Is(err, ErrGridMissing))
	})
}

func TestReserveRollsBackOnStorageFailure(t *testing.T) {
	t.Run("grid save fails", func(t *testing.T) {
		rf := newReservationFixture(t)
		rf.seating.saveErr = errors.New("connection reset")

		_, err := rf.reserve("A1", "A2")

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
		assert.Equal(t, 0, rf.storedCount(t))
		all, _ := rf.reservation.FindAll(context.Background())
		assert.Empty(t, all)
	})

	t.Run("record create fails", func(t *testing.T) {
		rf := newReservationFixture(t)
		rf.reservation.createErr = errors.New("unique violation")

		_, err := rf.reserve("A1", "A2")

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		// the marked grid was written, then restored
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
		assert.Equal(t, 0, rf.storedCount(t))
	})

	t.Run("counter update fails", func(t *testing.T) {
		rf := newReservationFixture(t)
		rf.users.updateErr = errors.New("deadlock")

		_, err := rf.reserve("A1")

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, 40, rf.grid(t).CountAvailable())
		all, _ := rf.reservation.FindAll(context.Background())
		assert.Empty(t, all)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	reserveOne := func(t *testing.T, rf *reservationFixture, seats ...string) *entity.Reservation {
		t.Helper()
		_, err := rf.reserve(seats...)
		require.NoError(t, err)
		all, _ := rf.reservation.FindByUserID(ctx, rf.user.ID)
		require.Len(t, all, 1)
		return all[0]
	}

	t.Run("frees seats and deletes record", func(t *testing.T) {
		rf := newReservationFixture(t)
		reservation := reserveOne(t, rf, "A1", "C3")
		require.Equal(t, 38, rf.grid(t).CountAvailable())

		err := rf.svc.Cancel(ctx, rf.user.ID.String(), reservation.ID.String())
		require.NoError(t, err)

		assert.Equal(t, 40, rf.grid(t).CountAvailable())
		assert.Equal(t, 0, rf.storedCount(t))
		all, _ := rf.reservation.FindAll(ctx)
		assert.Empty(t, all)
	})

	t.Run("rejects another user's reservation", func(t *testing.T) {
		rf := newReservationFixture(t)
		reservation := reserveOne(t, rf, "A1")

		stranger := rf.addUser("1990-01-01")
		err := rf.svc.Cancel(ctx, stranger.ID.String(), reservation.ID.String())
		assert.True(t, errors.Is(err, ErrNotOwner))
		assert.Equal(t, 39, rf.grid(t).CountAvailable())
	})

	t.Run("counter never goes below zero", func(t *testing.T) {
		rf := newReservationFixture(t)
		reservation := reserveOne(t, rf, "A1")
		rf.users.users[rf.user.ID].ReservationCount = 0

		err := rf.svc.Cancel(ctx, rf.user.ID.String(), reservation.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 0, rf.storedCount(t))
	})

	t.Run("missing grid still deletes the record", func(t *testing.T) {
		rf := newReservationFixture(t)
		reservation := reserveOne(t, rf, "A1")

		delete(rf.seating.grids, seatingKey{rf.room.ID, rf.screening.ID})

		err := rf.svc.Cancel(ctx, rf.user.ID.String(), reservation.ID.String())
		assert.True(t, errors.Is(err, ErrSeatsNotReleased))

		all, _ := rf.reservation.FindAll(ctx)
		assert.Empty(t, all)
		assert.Equal(t, 0, rf.storedCount(t))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		rf := newReservationFixture(t)
		err := rf.svc.Cancel(ctx, rf.user.ID.String(), "2b1a8c1e-0000-4000-8000-000000000000")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestListReservations(t *testing.T) {
	ctx := context.Background()
	rf := newReservationFixture(t)

	_, err := rf.reserve("A1", "C3")
	require.NoError(t, err)

	other := rf.addUser("1985-06-01")
	other.Email = "rui@example.com"
	req := &request.ReservationRequest{ScreeningID: rf.screening.ID.String(), Seats: []string{"D4"}}
	_, err = rf.svc.Reserve(ctx, other.ID.String(), req)
	require.NoError(t, err)

	mine, err := rf.svc.GetUserReservations(ctx, rf.user.ID.String())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, PriceVIP+PriceNormal, mine[0].TotalPrice)
	assert.Equal(t, "Heat", mine[0].FilmTitle)

	all, err := rf.svc.GetAllReservations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	t.Run("room lookup failure surfaces", func(t *testing.T) {
		rf.rooms.findErr = errors.New("connection reset")
		defer func() { rf.rooms.findErr = nil }()

		_, err := rf.svc.GetUserReservations(ctx, rf.user.ID.String())
		var storageErr *StorageError
		assert.ErrorAs(t, err, &storageErr)

		_, err = rf.svc.GetAllReservations(ctx)
		assert.ErrorAs(t, err, &storageErr)
	})
}

func TestCancelCounterFailureHeals(t *testing.T) {
	ctx := context.Background()
	rf := newReservationFixture(t)

	_, err := rf.reserve("A1")
	require.NoError(t, err)
	require.Equal(t, 1, rf.storedCount(t))

	all, _ := rf.reservation.FindByUserID(ctx, rf.user.ID)
	require.Len(t, all, 1)

	// the decrement write fails; the record is still removed and the
	// stored counter stays one high
	rf.users.updateErr = errors.New("deadlock")
	require.NoError(t, rf.svc.Cancel(ctx, rf.user.ID.String(), all[0].ID.String()))
	assert.Equal(t, 1, rf.storedCount(t))

	// the next successful write recounts from the stored reservations
	rf.users.updateErr = nil
	_, err = rf.reserve("B2")
	require.NoError(t, err)
	assert.Equal(t, 1, rf.storedCount(t))
}
