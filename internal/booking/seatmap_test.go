package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatMap_AllSeatsFree(t *testing.T) {
	m, err := NewSeatMap(6, 8)
	require.NoError(t, err)
	assert.Equal(t, 48, m.Total())
	assert.Equal(t, 0, m.OccupiedCount())
	assert.Equal(t, 0.0, m.Occupancy())
	assert.False(t, m.IsFull())
	// every grid position must exist and read as free
	for r := 0; r < 6; r++ {
		for c := 0; c < 8; c++ {
			assert.False(t, m.IsOccupied(SeatLabel(r, c)))
		}
	}
}

func TestNewSeatMap_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 5},
		{"negative cols", 5, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSeatMap(tc.rows, tc.cols)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "A1", SeatLabel(0, 0))
	assert.Equal(t, "C12", SeatLabel(2, 11))
	assert.Equal(t, "Z1", SeatLabel(25, 0))
	assert.Equal(t, "AA3", SeatLabel(26, 2))
}

func TestSeatMap_ReserveAndRelease(t *testing.T) {
	m, err := NewSeatMap(5, 10)
	require.NoError(t, err)

	claimed, err := m.Reserve([]string{"A1", "B2", "E10"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2", "E10"}, claimed)
	assert.Equal(t, 3, m.OccupiedCount())
	assert.True(t, m.IsOccupied("A1"))
	assert.True(t, m.IsOccupied("B2"))
	assert.True(t, m.IsOccupied("E10"))

	require.NoError(t, m.Release([]string{"A1", "B2", "E10"}))
	assert.Equal(t, 0, m.OccupiedCount())
	assert.Equal(t, 0.0, m.Occupancy())
}

func TestSeatMap_RoundTripRestoresState(t *testing.T) {
	m, err := NewSeatMap(4, 4)
	require.NoError(t, err)
	_, err = m.Reserve([]string{"D4", "C1"})
	require.NoError(t, err)
	before := m.Grid()

	_, err = m.Reserve([]string{"A1", "A2", "B3"})
	require.NoError(t, err)
	require.NoError(t, m.Release([]string{"A1", "A2", "B3"}))

	assert.Equal(t, before, m.Grid())
}

func TestSeatMap_Reserve_UnknownSeat(t *testing.T) {
	m, err := NewSeatMap(2, 2)
	require.NoError(t, err)
	_, err = m.Reserve([]string{"A1", "C1"})
	assert.ErrorIs(t, err, ErrUnknownSeat)
	assert.Contains(t, err.Error(), "C1")
	// nothing was applied, A1 included
	assert.Equal(t, 0, m.OccupiedCount())
}

func TestSeatMap_Reserve_SeatTakenIsAllOrNothing(t *testing.T) {
	// An N-seat request where a middle seat is pre-occupied must leave the
	// map exactly as it was, wherever the conflict sits in the request.
	request := []string{"A1", "A2", "A3", "A4", "A5"}
	for k := 0; k < len(request); k++ {
		m, err := NewSeatMap(3, 5)
		require.NoError(t, err)
		_, err = m.Reserve([]string{request[k]})
		require.NoError(t, err)
		before := m.Grid()

		_, err = m.Reserve(request)
		assert.ErrorIs(t, err, ErrSeatTaken)
		assert.Equal(t, before, m.Grid(), "conflict at position %d mutated the map", k)
	}
}

func TestSeatMap_Reserve_DeduplicatesRequest(t *testing.T) {
	m, err := NewSeatMap(2, 2)
	require.NoError(t, err)
	claimed, err := m.Reserve([]string{"A1", "a1", " A1 "})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, claimed, "duplicates collapse to one canonical label")
	assert.Equal(t, 1, m.OccupiedCount())
}

func TestSeatMap_Release_UnknownSeatFailsWithoutMutation(t *testing.T) {
	m, err := NewSeatMap(2, 2)
	require.NoError(t, err)
	_, err = m.Reserve([]string{"A1", "B2"})
	require.NoError(t, err)

	err = m.Release([]string{"A1", "Z9"})
	assert.ErrorIs(t, err, ErrUnknownSeat)
	assert.True(t, m.IsOccupied("A1"), "failed release must not free any seat")
}

func TestSeatMap_OccupancyAndFull(t *testing.T) {
	m, err := NewSeatMap(1, 4)
	require.NoError(t, err)
	_, err = m.Reserve([]string{"A1"})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, m.Occupancy(), 1e-9)
	assert.False(t, m.IsFull())

	_, err = m.Reserve([]string{"A2", "A3", "A4"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, m.Occupancy())
	assert.True(t, m.IsFull())
}
