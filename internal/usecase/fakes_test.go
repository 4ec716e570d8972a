package usecase

import (
	"context"
	"time"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. Each fake keeps
// its entities in a map and exposes err hooks to force a failure on
// the next matching call.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

// reads hand out copies so mutations only persist through Update,
// matching a real row scan
func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user := f.users[id]
	if user == nil {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	session := f.sessions[parsed]
	if session == nil || session.Expired(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	if parsed, err := uuid.Parse(token); err == nil {
		delete(f.sessions, parsed)
	}
	return nil
}

type fakeFilmRepo struct {
	films map[uuid.UUID]*entity.Film
}

func newFakeFilmRepo() *fakeFilmRepo {
	return &fakeFilmRepo{films: make(map[uuid.UUID]*entity.Film)}
}

func (f *fakeFilmRepo) Create(_ context.Context, film *entity.Film) error {
	f.films[film.ID] = film
	return nil
}

func (f *fakeFilmRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Film, error) {
	return f.films[id], nil
}

func (f *fakeFilmRepo) FindAll(_ context.Context) ([]*entity.Film, error) {
	films := make([]*entity.Film, 0, len(f.films))
	for _, film := range f.films {
		films = append(films, film)
	}
	return films, nil
}

type fakeRoomRepo struct {
	rooms     map[uuid.UUID]*entity.Room
	findErr   error
	updateErr error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByScreeningID(_ context.Context, screeningID uuid.UUID) (*entity.Room, error) {
	for _, room := range f.rooms {
		if room.HasScreening(screeningID) {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	rooms := make([]*entity.Room, 0, len(f.rooms))
	for _, room := range f.rooms {
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (f *fakeRoomRepo) UpdateScreenings(_ context.Context, room *entity.Room) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rooms[room.ID] = room
	return nil
}

type fakeScreeningRepo struct {
	screenings map[uuid.UUID]*entity.Screening
}

func newFakeScreeningRepo() *fakeScreeningRepo {
	return &fakeScreeningRepo{screenings: make(map[uuid.UUID]*entity.Screening)}
}

func (f *fakeScreeningRepo) Create(_ context.Context, screening *entity.Screening) error {
	f.screenings[screening.ID] = screening
	return nil
}

func (f *fakeScreeningRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Screening, error) {
	return f.screenings[id], nil
}

func (f *fakeScreeningRepo) FindByFilmID(_ context.Context, filmID uuid.UUID) ([]*entity.Screening, error) {
	var result []*entity.Screening
	for _, screening := range f.screenings {
		if screening.FilmID == filmID {
			result = append(result, screening)
		}
	}
	return result, nil
}

func (f *fakeScreeningRepo) FindByFilmAndStart(_ context.Context, filmID uuid.UUID, start string) (*entity.Screening, error) {
	for _, screening := range f.screenings {
		if screening.FilmID == filmID && screening.Start == start {
			return screening, nil
		}
	}
	return nil, nil
}

type seatingKey struct {
	roomID      uuid.UUID
	screeningID uuid.UUID
}

type fakeSeatingRepo struct {
	grids   map[seatingKey]*entity.RoomSeating
	saveErr error
	// saveErrOnce fails only the first SaveGrid call, later saves
	// (compensation writes) succeed
	saveErrOnce error
}

func newFakeSeatingRepo() *fakeSeatingRepo {
	return &fakeSeatingRepo{grids: make(map[seatingKey]*entity.RoomSeating)}
}

func (f *fakeSeatingRepo) Create(_ context.Context, seating *entity.RoomSeating) error {
	f.grids[seatingKey{seating.RoomID, seating.ScreeningID}] = seating
	return nil
}

func (f *fakeSeatingRepo) Find(_ context.Context, roomID, screeningID uuid.UUID) (*entity.RoomSeating, error) {
	seating := f.grids[seatingKey{roomID, screeningID}]
	if seating == nil {
		return nil, nil
	}
	// callers mutate the grid they get back, hand out a copy like a
	// real row scan would
	copied := *seating
	copied.Grid = seating.Grid.Clone()
	return &copied, nil
}

func (f *fakeSeatingRepo) SaveGrid(_ context.Context, roomID, screeningID uuid.UUID, grid entity.SeatGrid) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saveErrOnce != nil {
		err := f.saveErrOnce
		f.saveErrOnce = nil
		return err
	}
	seating := f.grids[seatingKey{roomID, screeningID}]
	if seating != nil {
		seating.Grid = grid.Clone()
	}
	return nil
}

func (f *fakeSeatingRepo) Delete(_ context.Context, roomID, screeningID uuid.UUID) error {
	delete(f.grids, seatingKey{roomID, screeningID})
	return nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
	createErr    error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, reservation := range f.reservations {
		if reservation.UserID == userID {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context) ([]*entity.Reservation, error) {
	result := make([]*entity.Reservation, 0, len(f.reservations))
	for _, reservation := range f.reservations {
		result = append(result, reservation)
	}
	return result, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reservations, id)
	return nil
}

// fixture bundles the fakes behind a Repository so services see the
// same wiring they get in production.
type fixture struct {
	repo        *repository.Repository
	users       *fakeUserRepo
	sessions    *fakeSessionRepo
	films       *fakeFilmRepo
	rooms       *fakeRoomRepo
	screenings  *fakeScreeningRepo
	seating     *fakeSeatingRepo
	reservation *fakeReservationRepo
}

func newFixture() *fixture {
	f := &fixture{
		users:       newFakeUserRepo(),
		sessions:    newFakeSessionRepo(),
		films:       newFakeFilmRepo(),
		rooms:       newFakeRoomRepo(),
		screenings:  newFakeScreeningRepo(),
		seating:     newFakeSeatingRepo(),
		reservation: newFakeReservationRepo(),
	}
	f.repo = &repository.Repository{
		User:        f.users,
		Session:     f.sessions,
		Film:        f.films,
		Room:        f.rooms,
		Screening:   f.screenings,
		Seating:     f.seating,
		Reservation: f.reservation,
	}
	return f
}

var testTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func testLogger() *zap.Logger { return zap.NewNop() }

func (f *fixture) addFilm(title string, duration, minAge int, showtimes ...string) *entity.Film {
	film := &entity.Film{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: testTime, UpdatedAt: testTime},
		Title:             title,
		DurationInMinutes: duration,
		Category:          "Drama",
		MinimumAge:        minAge,
		Showtimes:         showtimes,
	}
	f.films.films[film.ID] = film
	return film
}

func (f *fixture) addRoom(number, rows, vipRows, columns int) *entity.Room {
	room := &entity.Room{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: testTime, UpdatedAt: testTime},
		Number:    number,
		TotalRows: rows,
		VIPRows:   vipRows,
		Columns:   columns,
	}
	f.rooms.rooms[room.ID] = room
	return room
}

func (f *fixture) addScreening(film *entity.Film, start string) *entity.Screening {
	end, _ := entity.EndTime(start, film.DurationInMinutes)
	screening := &entity.Screening{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: testTime},
		FilmID:     film.ID,
		Start:      start,
		End:        end,
	}
	f.screenings.screenings[screening.ID] = screening
	return screening
}

// assignScreening attaches the screening to the room and seeds its
// fresh grid the way a successful room assignment would.
func (f *fixture) assignScreening(room *entity.Room, screening *entity.Screening) *entity.RoomSeating {
	room.ScreeningIDs = append(room.ScreeningIDs, screening.ID)
	grid, _ := entity.GenerateGrid(room)
	seating := &entity.RoomSeating{
		RoomID:      room.ID,
		ScreeningID: screening.ID,
		Grid:        grid,
		UpdatedAt:   testTime,
	}
	f.seating.grids[seatingKey{room.ID, screening.ID}] = seating
	return seating
}

func (f *fixture) addUser(birthDate string) *entity.User {
	user := &entity.User{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: testTime, UpdatedAt: testTime},
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		BirthDate: birthDate,
		Role:      entity.RoleClient,
	}
	f.users.users[user.ID] = user
	return user
}
