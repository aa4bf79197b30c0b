package booking

import (
	"sort"
	"time"
)

// ShowtimeSales is one row of the per-showtime breakdown: how many seats
// were sold for a title at a specific start time in a specific room.
type ShowtimeSales struct {
	Title    string
	StartsAt time.Time
	Room     int
	Seats    int
}

// Report aggregates the active ticket collection over a time window.
// SeatsByTitle and SeatsByRoom count sold seats; ByShowtime is ordered from
// busiest to quietest, ties keeping the order in which the pair was first
// sold. TopTitle is the single most-sold title; when several titles tie,
// the first in ascending name order wins.
type Report struct {
	TopTitle     string
	SeatsByTitle map[string]int
	ByShowtime   []ShowtimeSales
	SeatsByRoom  map[int]int
	TicketsSold  int
}

// Report derives sales aggregates from every active ticket whose showtime
// starts inside [from, to]. A zero from or to leaves that side of the
// window open. The ledger is not mutated. When no ticket falls inside the
// window the method returns ErrNoSales instead of an empty report.
func (l *Ledger) Report(from, to time.Time) (*Report, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	type pair struct {
		title string
		start time.Time
		room  int
	}
	seatsByTitle := make(map[string]int)
	seatsByRoom := make(map[int]int)
	byPair := make(map[pair]int)
	order := make([]pair, 0)
	sold := 0

	for _, t := range l.tickets {
		start := t.Showtime.StartsAt
		if !from.IsZero() && start.Before(from) {
			continue
		}
		if !to.IsZero() && start.After(to) {
			continue
		}
		n := len(t.Seats)
		sold++
		seatsByTitle[t.Title.Name] += n
		seatsByRoom[t.Showtime.Room.Number] += n
		p := pair{title: t.Title.Name, start: start, room: t.Showtime.Room.Number}
		if _, seen := byPair[p]; !seen {
			order = append(order, p)
		}
		byPair[p] += n
	}

	if sold == 0 {
		return nil, ErrNoSales
	}

	rows := make([]ShowtimeSales, 0, len(order))
	for _, p := range order {
		rows = append(rows, ShowtimeSales{Title: p.title, StartsAt: p.start, Room: p.room, Seats: byPair[p]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Seats > rows[j].Seats
	})

	top, best := "", -1
	names := make([]string, 0, len(seatsByTitle))
	for name := range seatsByTitle {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if seatsByTitle[name] > best {
			top, best = name, seatsByTitle[name]
		}
	}

	return &Report{
		TopTitle:     top,
		SeatsByTitle: seatsByTitle,
		ByShowtime:   rows,
		SeatsByRoom:  seatsByRoom,
		TicketsSold:  sold,
	}, nil
}
