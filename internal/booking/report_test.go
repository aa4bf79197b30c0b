package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportFixture sells a known spread of tickets:
//
//	Inception  19:00 room 1 → 3 seats, then 2 more (5 total, sold first)
//	Inception  21:30 room 1 → 1 seat
//	Lion King  19:30 room 2 → 4 seats
func reportFixture(t *testing.T) (*Ledger, time.Time) {
	t.Helper()
	day := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
	l := New("Cine Estrella")
	l.SetClock(func() time.Time { return day })

	_, err := l.AddRoom(1, 5, 10)
	require.NoError(t, err)
	_, err = l.AddRoom(2, 5, 10)
	require.NoError(t, err)

	inception := l.AddTitle("Inception", "Ciencia Ficción", 148, "PG-13", "Caja de Inception", 10)
	lionKing := l.AddTitle("The Lion King", "Animación", 118, "G", "Aviso de The Lion King", 0)

	s1, err := l.AddShowtime(inception.ID, 1, day.Add(19*time.Hour))
	require.NoError(t, err)
	s2, err := l.AddShowtime(inception.ID, 1, day.Add(21*time.Hour+30*time.Minute))
	require.NoError(t, err)
	s3, err := l.AddShowtime(lionKing.ID, 2, day.Add(19*time.Hour+30*time.Minute))
	require.NoError(t, err)

	x := l.Customer("X", "x@example.com")
	_, err = l.Reserve(x, inception.ID, s1.ID, []string{"A1", "A2", "A3"}, false)
	require.NoError(t, err)
	_, err = l.Reserve(x, lionKing.ID, s3.ID, []string{"B1", "B2", "B3", "B4"}, false)
	require.NoError(t, err)
	_, err = l.Reserve(x, inception.ID, s2.ID, []string{"C1"}, false)
	require.NoError(t, err)
	_, err = l.Reserve(x, inception.ID, s1.ID, []string{"A4", "A5"}, true)
	require.NoError(t, err)
	return l, day
}

func TestReport_Empty(t *testing.T) {
	l := New("test")
	_, err := l.Report(time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrNoSales)
}

func TestReport_Aggregates(t *testing.T) {
	l, _ := reportFixture(t)
	rep, err := l.Report(time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 4, rep.TicketsSold)
	assert.Equal(t, map[string]int{"Inception": 6, "The Lion King": 4}, rep.SeatsByTitle)
	assert.Equal(t, map[int]int{1: 6, 2: 4}, rep.SeatsByRoom)
	assert.Equal(t, "Inception", rep.TopTitle)

	require.Len(t, rep.ByShowtime, 3)
	assert.Equal(t, 5, rep.ByShowtime[0].Seats) // Inception 19:00
	assert.Equal(t, "Inception", rep.ByShowtime[0].Title)
	assert.Equal(t, 4, rep.ByShowtime[1].Seats) // Lion King 19:30
	assert.Equal(t, 1, rep.ByShowtime[2].Seats) // Inception 21:30
}

func TestReport_TiesDeterministic(t *testing.T) {
	l, _ := reportFixture(t)
	// bring The Lion King level with Inception (6 seats each); the tie is
	// broken by ascending title name
	title := l.Titles()[1]
	show := title.Showtimes[0]
	x := l.Customer("X", "x@example.com")
	_, err := l.Reserve(x, title.ID, show.ID, []string{"C1", "C2"}, false)
	require.NoError(t, err)

	rep, err := l.Report(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "Inception", rep.TopTitle)
}

func TestReport_WindowFiltersByShowtime(t *testing.T) {
	l, day := reportFixture(t)

	// only the two evening screenings from 19:30 onwards
	rep, err := l.Report(day.Add(19*time.Hour+30*time.Minute), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Inception": 1, "The Lion King": 4}, rep.SeatsByTitle)
	assert.Equal(t, "The Lion King", rep.TopTitle)

	// a window with no showtimes is an explicit no-data answer
	_, err = l.Report(day.Add(48*time.Hour), time.Time{})
	assert.ErrorIs(t, err, ErrNoSales)

	// bounds are inclusive on both sides
	rep, err = l.Report(day.Add(19*time.Hour), day.Add(19*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Inception": 5}, rep.SeatsByTitle)
}

func TestReport_CancelledTicketsExcluded(t *testing.T) {
	l, _ := reportFixture(t)
	x := l.Customer("X", "x@example.com")
	// cancel the single-seat 21:30 ticket
	var code string
	for _, tk := range x.Tickets {
		if len(tk.Seats) == 1 {
			code = tk.Code
		}
	}
	require.NotEmpty(t, code)
	require.NoError(t, l.Cancel(code, x))

	rep, err := l.Report(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.TicketsSold)
	assert.Equal(t, 5, rep.SeatsByTitle["Inception"])
}
