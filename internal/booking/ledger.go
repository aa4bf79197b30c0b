package booking

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Customer identifies a buyer by email and accumulates their tickets in
// purchase order. Customers exist independently of any particular showing;
// the ledger creates one per email on first contact.
type Customer struct {
	Name    string
	Email   string
	Tickets []*Ticket
}

// Ticket records a successful reservation: the claimed seats, the involved
// title and showtime, the buyer, and the add-on charge if one was taken.
// Tickets are immutable once minted; the only thing that ever happens to
// one is its removal on cancellation.
type Ticket struct {
	Code       string
	Title      *Title
	Showtime   *Showtime
	Seats      []string
	Customer   *Customer
	AddonName  string
	AddonPrice int
	IssuedAt   time.Time
}

// Ledger is the single source of truth for one cinema: its rooms, its title
// catalog, its customers and every active ticket. All mutating operations
// either fully succeed or leave the ledger untouched. A read-write mutex
// guards all state so the ledger can back a server: mutations serialize,
// read snapshots (views.go) share the read lock.
type Ledger struct {
	mu        sync.RWMutex
	name      string
	rooms     []*Room
	titles    []*Title
	customers map[string]*Customer
	tickets   []*Ticket          // active tickets in sale order
	byCode    map[string]*Ticket // code -> active ticket
	issued    map[string]struct{} // every code ever minted, cancelled included
	nextID    uint64

	// now is swappable so the cancellation window can be tested.
	now func() time.Time
}

// New returns an empty ledger for the named cinema.
func New(name string) *Ledger {
	return &Ledger{
		name:      name,
		customers: make(map[string]*Customer),
		byCode:    make(map[string]*Ticket),
		issued:    make(map[string]struct{}),
		now:       time.Now,
	}
}

// Name returns the cinema's display name.
func (l *Ledger) Name() string { return l.name }

// SetClock replaces the ledger's time source. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// AddRoom registers an auditorium with the given grid. It fails with
// ErrDuplicateRoom when the number is already in use and with
// ErrInvalidDimension when the grid is degenerate.
func (l *Ledger) AddRoom(number, rows, cols int) (*Room, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.rooms {
		if r.Number == number {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRoom, number)
		}
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	room := &Room{Number: number, Rows: rows, Cols: cols}
	l.rooms = append(l.rooms, room)
	return room, nil
}

// AddTitle appends a movie to the catalog. addonName may be empty for
// titles without a collectible; addonPrice 0 with a name means the add-on
// is free.
func (l *Ledger) AddTitle(name, genre string, runtimeMin int, rating, addonName string, addonPrice int) *Title {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	t := &Title{
		ID:         l.nextID,
		Name:       name,
		Genre:      genre,
		RuntimeMin: runtimeMin,
		Rating:     rating,
		AddonName:  addonName,
		AddonPrice: addonPrice,
	}
	l.titles = append(l.titles, t)
	return t
}

// Titles returns the catalog in insertion order. The slice is a copy; the
// titles themselves are shared.
func (l *Ledger) Titles() []*Title {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Title, len(l.titles))
	copy(out, l.titles)
	return out
}

// FindTitle looks a title up by ID, failing with ErrTitleNotListed.
func (l *Ledger) FindTitle(id uint64) (*Title, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.findTitle(id)
}

func (l *Ledger) findTitle(id uint64) (*Title, error) {
	for _, t := range l.titles {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrTitleNotListed
}

// FindRoom looks a room up by number, failing with ErrRoomNotFound.
func (l *Ledger) FindRoom(number int) (*Room, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.findRoom(number)
}

func (l *Ledger) findRoom(number int) (*Room, error) {
	for _, r := range l.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
}

// AddShowtime schedules a screening of the title in the given room and
// creates its fully free seat map. It rejects an identical (start, room)
// pair within the same title with ErrDuplicateShowtime, and any screening
// whose running interval would intersect another one in the same room with
// ErrShowtimeOverlap.
func (l *Ledger) AddShowtime(titleID uint64, roomNumber int, startsAt time.Time) (*Showtime, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	title, err := l.findTitle(titleID)
	if err != nil {
		return nil, err
	}
	room, err := l.findRoom(roomNumber)
	if err != nil {
		return nil, err
	}
	for _, st := range title.Showtimes {
		if st.Room == room && st.StartsAt.Equal(startsAt) {
			return nil, fmt.Errorf("%w: %s in room %d", ErrDuplicateShowtime, startsAt.Format(time.RFC3339), roomNumber)
		}
	}
	end := startsAt.Add(time.Duration(title.RuntimeMin) * time.Minute)
	for _, other := range l.titles {
		for _, st := range other.Showtimes {
			if st.Room != room {
				continue
			}
			otherEnd := st.StartsAt.Add(time.Duration(other.RuntimeMin) * time.Minute)
			if startsAt.Before(otherEnd) && st.StartsAt.Before(end) {
				return nil, fmt.Errorf("%w: room %d at %s", ErrShowtimeOverlap, roomNumber, st.StartsAt.Format(time.RFC3339))
			}
		}
	}
	seats, err := NewSeatMap(room.Rows, room.Cols)
	if err != nil {
		return nil, err
	}
	l.nextID++
	st := &Showtime{ID: l.nextID, StartsAt: startsAt, Room: room, Seats: seats}
	title.Showtimes = append(title.Showtimes, st)
	return st, nil
}

// Customer returns the customer registered under the email, creating one on
// first sight. Email matching is case-insensitive; the stored name is the
// one supplied at first contact.
func (l *Ledger) Customer(name, email string) *Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(email))
	if c, ok := l.customers[key]; ok {
		return c
	}
	c := &Customer{Name: name, Email: key}
	l.customers[key] = c
	return c
}

// Reserve issues a ticket for the given seats, walking the checks in a
// fixed order: the title must be listed, the showtime must belong to it,
// the room must not be full, and every seat must exist and be free. The
// seat map is only mutated after the whole request validates, so a failed
// reservation leaves no trace. On success the ticket lands both in the
// ledger and in the customer's own list.
func (l *Ledger) Reserve(customer *Customer, titleID, showtimeID uint64, seats []string, wantAddon bool) (*Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	title, err := l.findTitle(titleID)
	if err != nil {
		return nil, err
	}
	showtime, err := title.FindShowtime(showtimeID)
	if err != nil {
		return nil, err
	}
	if showtime.Seats.IsFull() {
		return nil, ErrRoomFull
	}
	claimed, err := showtime.Seats.Reserve(seats)
	if err != nil {
		return nil, err
	}

	addonName, addonPrice := "", 0
	if wantAddon && title.HasAddon() {
		addonName = title.AddonName
		addonPrice = title.AddonPrice
	}

	ticket := &Ticket{
		Code:       l.mintCode(),
		Title:      title,
		Showtime:   showtime,
		Seats:      claimed,
		Customer:   customer,
		AddonName:  addonName,
		AddonPrice: addonPrice,
		IssuedAt:   l.now(),
	}
	l.tickets = append(l.tickets, ticket)
	l.byCode[ticket.Code] = ticket
	customer.Tickets = append(customer.Tickets, ticket)
	return ticket, nil
}

// mintCode produces an 8-character uppercase hex code and regenerates on
// collision against every code the ledger has ever issued, cancelled ones
// included.
func (l *Ledger) mintCode() string {
	for {
		id := uuid.New()
		code := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
		if _, taken := l.issued[code]; taken {
			continue
		}
		l.issued[code] = struct{}{}
		return code
	}
}

// Cancel voids the ticket with the given code, frees its seats and removes
// it from both the ledger and the owning customer. A non-nil requester must
// be the ticket's owner. Cancellation is only allowed strictly before the
// showtime starts; afterwards it fails with ErrTooLateToCancel and the
// ticket stays intact. The cancelled seats become reservable immediately.
func (l *Ledger) Cancel(code string, requester *Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	code = strings.ToUpper(strings.TrimSpace(code))
	ticket, ok := l.byCode[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTicketNotFound, code)
	}
	if requester != nil && ticket.Customer != requester {
		return ErrNotAuthorized
	}
	if !l.now().Before(ticket.Showtime.StartsAt) {
		return ErrTooLateToCancel
	}
	if err := ticket.Showtime.Seats.Release(ticket.Seats); err != nil {
		return err
	}
	delete(l.byCode, code)
	for i, t := range l.tickets {
		if t == ticket {
			l.tickets = append(l.tickets[:i], l.tickets[i+1:]...)
			break
		}
	}
	owner := ticket.Customer
	for i, t := range owner.Tickets {
		if t == ticket {
			owner.Tickets = append(owner.Tickets[:i], owner.Tickets[i+1:]...)
			break
		}
	}
	return nil
}

// FindTicket returns the active ticket with the given code, or
// ErrTicketNotFound.
func (l *Ledger) FindTicket(code string) (*Ticket, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// TicketCount returns the number of active tickets.
func (l *Ledger) TicketCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tickets)
}
