package booking

import (
	"sort"
	"time"
)

// Room is a physical auditorium with a fixed seating grid. Rooms are
// immutable after creation; their seat maps live on the showtimes scheduled
// in them, one map per showtime.
type Room struct {
	Number int
	Rows   int
	Cols   int
}

// Showtime binds a start time to a room and owns the seat map for that
// screening. The map is created fully free the moment the showtime is
// scheduled, never before.
type Showtime struct {
	ID       uint64
	StartsAt time.Time
	Room     *Room
	Seats    *SeatMap
}

// Title is an entry in the cinema's catalog. Showtimes keep their insertion
// order, which is also the display order. A non-empty AddonName marks the
// title as carrying a collectible add-on; AddonPrice 0 means the add-on is
// free.
type Title struct {
	ID         uint64
	Name       string
	Genre      string
	RuntimeMin int
	Rating     string
	AddonName  string
	AddonPrice int
	Showtimes  []*Showtime
}

// HasAddon reports whether the title carries a collectible add-on.
func (t *Title) HasAddon() bool { return t.AddonName != "" }

// FindShowtime returns the title's showtime with the given ID, or
// ErrShowtimeNotFound.
func (t *Title) FindShowtime(id uint64) (*Showtime, error) {
	for _, st := range t.Showtimes {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, ErrShowtimeNotFound
}

// Alternative pairs a showtime with its occupancy percentage, as offered to
// a customer facing a crowded screening.
type Alternative struct {
	Showtime  *Showtime
	Occupancy float64
}

// Alternatives lists the title's other showtimes ordered from emptiest to
// fullest. The sort is stable so showtimes with equal occupancy keep their
// scheduling order. At most limit entries are returned; a non-positive
// limit returns all of them.
func (t *Title) Alternatives(current *Showtime, limit int) []Alternative {
	alts := make([]Alternative, 0, len(t.Showtimes))
	for _, st := range t.Showtimes {
		if st == current {
			continue
		}
		alts = append(alts, Alternative{Showtime: st, Occupancy: st.Seats.Occupancy()})
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].Occupancy < alts[j].Occupancy
	})
	if limit > 0 && len(alts) > limit {
		alts = alts[:limit]
	}
	return alts
}
