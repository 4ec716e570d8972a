package entity

// Film in the catalog. Showtimes are the daily "HH:MM" slots the film
// can be scheduled at; a screening is created from one of them.
type Film struct {
	Base
	Title             string   `db:"title"`
	DurationInMinutes int      `db:"duration_in_minutes"`
	Category          string   `db:"category"`
	MinimumAge        int      `db:"minimum_age"`
	Showtimes         []string `db:"showtimes"`
}

// HasShowtime reports whether the clock time is one of the film's slots.
func (f *Film) HasShowtime(start string) bool {
	for _, h := range f.Showtimes {
		if h == start {
			return true
		}
	}
	return false
}
