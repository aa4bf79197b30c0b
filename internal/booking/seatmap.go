package booking

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// SeatMap tracks occupancy for one showtime in one room. Every valid
// (row, column) position of the room appears as a label in the map from the
// moment of creation; labels are never added or removed afterwards, only
// their occupied flag toggles. Labels combine the row letter with the
// 1-based column number ("A1", "C12"). Rows past "Z" continue Excel-style
// ("AA", "AB", ...).
type SeatMap struct {
	rows     int
	cols     int
	occupied map[string]bool // label -> occupied
}

// NewSeatMap builds a fully free seat map for a rows×cols grid. It returns
// ErrInvalidDimension when either dimension is below one.
func NewSeatMap(rows, cols int) (*SeatMap, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	occ := make(map[string]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			occ[SeatLabel(r, c)] = false
		}
	}
	return &SeatMap{rows: rows, cols: cols, occupied: occ}, nil
}

// SeatLabel converts zero-based grid coordinates into a seat label such as
// "A1" or "AA7".
func SeatLabel(row, col int) string {
	return RowLabel(row) + fmt.Sprint(col+1)
}

// RowLabel converts a zero-based row index into an alphabetical label like
// A, B, ..., Z, AA.
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	res := []rune{}
	for {
		res = append(res, rune('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// RowCount returns the number of seat rows in the grid.
func (m *SeatMap) RowCount() int { return m.rows }

// ColCount returns the number of seats per row.
func (m *SeatMap) ColCount() int { return m.cols }

// Total returns the number of seats in the map.
func (m *SeatMap) Total() int { return m.rows * m.cols }

// OccupiedCount returns how many seats are currently occupied.
func (m *SeatMap) OccupiedCount() int {
	n := 0
	for _, taken := range m.occupied {
		if taken {
			n++
		}
	}
	return n
}

// Occupancy returns the occupied fraction as a percentage in [0, 100]. An
// empty map reports 0 so callers never divide by zero.
func (m *SeatMap) Occupancy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	return float64(m.OccupiedCount()) / float64(total) * 100
}

// IsFull reports whether every seat is occupied.
func (m *SeatMap) IsFull() bool { return m.Occupancy() >= 100 }

// IsOccupied reports the state of a single label. Unknown labels read as
// free; use Reserve/Release for validated access.
func (m *SeatMap) IsOccupied(label string) bool {
	return m.occupied[normalizeLabel(label)]
}

// Reserve marks every listed seat occupied and returns the canonical
// labels it claimed: normalized, deduplicated, in request order. The
// request is validated in full before any seat is touched: an unknown
// label fails with ErrUnknownSeat and an occupied one with ErrSeatTaken,
// and in both cases the map is left exactly as it was. Callers record the
// returned labels, so a ticket holds exactly what the map validated.
func (m *SeatMap) Reserve(seats []string) ([]string, error) {
	labels, err := m.validate(seats, true)
	if err != nil {
		return nil, err
	}
	for _, l := range labels {
		m.occupied[l] = true
	}
	return labels, nil
}

// Release marks every listed seat free. Like Reserve it validates the whole
// request first: an unknown label fails with ErrUnknownSeat and nothing is
// released. Releasing a seat that is already free is not an error.
func (m *SeatMap) Release(seats []string) error {
	labels, err := m.validate(seats, false)
	if err != nil {
		return err
	}
	for _, l := range labels {
		m.occupied[l] = false
	}
	return nil
}

// validate normalizes and deduplicates the requested labels and checks that
// each one exists in the grid. When wantFree is set it additionally rejects
// labels that are already occupied. It returns the deduplicated labels in
// request order.
func (m *SeatMap) validate(seats []string, wantFree bool) ([]string, error) {
	seen := mapset.NewThreadUnsafeSet[string]()
	labels := make([]string, 0, len(seats))
	for _, raw := range seats {
		l := normalizeLabel(raw)
		if !seen.Add(l) {
			continue
		}
		taken, ok := m.occupied[l]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeat, l)
		}
		if wantFree && taken {
			return nil, fmt.Errorf("%w: %s", ErrSeatTaken, l)
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// normalizeLabel upper-cases a label and strips surrounding whitespace so
// "a1 " and "A1" address the same seat.
func normalizeLabel(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Grid returns a row-major snapshot of the occupancy flags. Mutating the
// returned slices does not affect the map.
func (m *SeatMap) Grid() [][]bool {
	grid := make([][]bool, m.rows)
	for r := 0; r < m.rows; r++ {
		grid[r] = make([]bool, m.cols)
		for c := 0; c < m.cols; c++ {
			grid[r][c] = m.occupied[SeatLabel(r, c)]
		}
	}
	return grid
}
