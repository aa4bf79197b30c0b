package booking

import (
	"strings"
	"time"
)

// ShowtimeView is a read-only snapshot of one screening's schedule and
// occupancy.
type ShowtimeView struct {
	ID        uint64
	StartsAt  time.Time
	Room      int
	Occupancy float64
	Full      bool
}

// TitleView is a read-only snapshot of a catalog entry and its showtimes.
type TitleView struct {
	ID         uint64
	Name       string
	Genre      string
	RuntimeMin int
	Rating     string
	AddonName  string
	AddonPrice int
	Showtimes  []ShowtimeView
}

// SeatMapView is a row-major snapshot of one showtime's seat occupancy.
type SeatMapView struct {
	ShowtimeID uint64
	Room       int
	Occupancy  float64
	Grid       [][]bool
}

// TitleViews snapshots the whole catalog in insertion order. Read paths
// must go through these view methods rather than walking live Title or
// SeatMap structures: the snapshot is taken under the ledger lock, so a
// concurrent reservation cannot race the read.
func (l *Ledger) TitleViews() []TitleView {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]TitleView, 0, len(l.titles))
	for _, t := range l.titles {
		out = append(out, snapshotTitle(t))
	}
	return out
}

// TitleView snapshots a single catalog entry, failing with
// ErrTitleNotListed.
func (l *Ledger) TitleView(id uint64) (TitleView, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, err := l.findTitle(id)
	if err != nil {
		return TitleView{}, err
	}
	return snapshotTitle(t), nil
}

// SeatMapView snapshots the seat grid of one showtime.
func (l *Ledger) SeatMapView(titleID, showtimeID uint64) (SeatMapView, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, err := l.findTitle(titleID)
	if err != nil {
		return SeatMapView{}, err
	}
	st, err := t.FindShowtime(showtimeID)
	if err != nil {
		return SeatMapView{}, err
	}
	return SeatMapView{
		ShowtimeID: st.ID,
		Room:       st.Room.Number,
		Occupancy:  st.Seats.Occupancy(),
		Grid:       st.Seats.Grid(),
	}, nil
}

// AlternativeViews snapshots the title's other showtimes from emptiest to
// fullest, truncated to limit (non-positive returns all).
func (l *Ledger) AlternativeViews(titleID, showtimeID uint64, limit int) ([]ShowtimeView, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, err := l.findTitle(titleID)
	if err != nil {
		return nil, err
	}
	current, err := t.FindShowtime(showtimeID)
	if err != nil {
		return nil, err
	}
	alts := t.Alternatives(current, limit)
	out := make([]ShowtimeView, 0, len(alts))
	for _, a := range alts {
		out = append(out, ShowtimeView{
			ID:        a.Showtime.ID,
			StartsAt:  a.Showtime.StartsAt,
			Room:      a.Showtime.Room.Number,
			Occupancy: a.Occupancy,
			Full:      a.Showtime.Seats.IsFull(),
		})
	}
	return out, nil
}

// TicketsFor snapshots the customer's active tickets in purchase order. An
// unknown email yields an empty slice. Tickets are immutable once issued,
// so sharing the pointers outside the lock is safe.
func (l *Ledger) TicketsFor(email string) []*Ticket {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.customers[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil
	}
	out := make([]*Ticket, len(c.Tickets))
	copy(out, c.Tickets)
	return out
}

func snapshotTitle(t *Title) TitleView {
	shows := make([]ShowtimeView, 0, len(t.Showtimes))
	for _, st := range t.Showtimes {
		shows = append(shows, ShowtimeView{
			ID:        st.ID,
			StartsAt:  st.StartsAt,
			Room:      st.Room.Number,
			Occupancy: st.Seats.Occupancy(),
			Full:      st.Seats.IsFull(),
		})
	}
	return TitleView{
		ID:         t.ID,
		Name:       t.Name,
		Genre:      t.Genre,
		RuntimeMin: t.RuntimeMin,
		Rating:     t.Rating,
		AddonName:  t.AddonName,
		AddonPrice: t.AddonPrice,
		Showtimes:  shows,
	}
}
