package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
)

// PublicHandler serves the unauthenticated browsing endpoints: the catalog
// with live occupancy, seat grids and alternative showtimes. All reads go
// through the ledger's snapshot views so a concurrent booking can never
// race a response being rendered.
type PublicHandler struct {
	Ledger *booking.Ledger
}

func NewPublicHandler(l *booking.Ledger) *PublicHandler {
	if l == nil {
		panic("nil ledger passed to NewPublicHandler")
	}
	return &PublicHandler{Ledger: l}
}

// publicShowtime is one screening in a title summary.
type publicShowtime struct {
	ID        uint64    `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	Room      int       `json:"room"`
	Occupancy float64   `json:"occupancy"`
	Full      bool      `json:"full"`
}

// publicTitle is a catalog entry as shown to guests.
type publicTitle struct {
	ID         uint64           `json:"id"`
	Name       string           `json:"name"`
	Genre      string           `json:"genre"`
	RuntimeMin int              `json:"runtime_min"`
	Rating     string           `json:"rating"`
	AddonName  string           `json:"addon_name,omitempty"`
	AddonPrice int              `json:"addon_price,omitempty"`
	Showtimes  []publicShowtime `json:"showtimes"`
}

func toPublicShowtime(v booking.ShowtimeView) publicShowtime {
	return publicShowtime{
		ID:        v.ID,
		StartsAt:  v.StartsAt,
		Room:      v.Room,
		Occupancy: v.Occupancy,
		Full:      v.Full,
	}
}

func toPublicTitle(v booking.TitleView) publicTitle {
	shows := make([]publicShowtime, 0, len(v.Showtimes))
	for _, st := range v.Showtimes {
		shows = append(shows, toPublicShowtime(st))
	}
	out := publicTitle{
		ID:         v.ID,
		Name:       v.Name,
		Genre:      v.Genre,
		RuntimeMin: v.RuntimeMin,
		Rating:     v.Rating,
		Showtimes:  shows,
	}
	if v.AddonName != "" {
		out.AddonName = v.AddonName
		out.AddonPrice = v.AddonPrice
	}
	return out
}

// ListTitles handles GET /v1/titles. It returns every catalog entry with
// per-showtime occupancy, in insertion order.
func (h *PublicHandler) ListTitles(c echo.Context) error {
	views := h.Ledger.TitleViews()
	items := make([]publicTitle, 0, len(views))
	for _, v := range views {
		items = append(items, toPublicTitle(v))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTitle handles GET /v1/titles/:id.
func (h *PublicHandler) GetTitle(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return bookingError(c, booking.ErrTitleNotListed)
	}
	view, err := h.Ledger.TitleView(id)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toPublicTitle(view)})
}

// GetShowtimeSeats handles GET /v1/titles/:id/showtimes/:sid/seats. The
// grid is returned row by row so clients can render the classic seat plan.
func (h *PublicHandler) GetShowtimeSeats(c echo.Context) error {
	titleID, sid, err := showtimePath(c)
	if err != nil {
		return bookingError(c, err)
	}
	view, err := h.Ledger.SeatMapView(titleID, sid)
	if err != nil {
		return bookingError(c, err)
	}
	type rowView struct {
		Row   string `json:"row"`
		Seats []struct {
			Label    string `json:"label"`
			Occupied bool   `json:"occupied"`
		} `json:"seats"`
	}
	rows := make([]rowView, 0, len(view.Grid))
	for r, cols := range view.Grid {
		rv := rowView{Row: booking.RowLabel(r)}
		for col, occupied := range cols {
			rv.Seats = append(rv.Seats, struct {
				Label    string `json:"label"`
				Occupied bool   `json:"occupied"`
			}{Label: booking.SeatLabel(r, col), Occupied: occupied})
		}
		rows = append(rows, rv)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"showtime_id": view.ShowtimeID,
		"room":        view.Room,
		"occupancy":   view.Occupancy,
		"rows":        rows,
	})
}

// GetAlternatives handles GET /v1/titles/:id/showtimes/:sid/alternatives.
// It lists the title's other showtimes from emptiest to fullest, the list a
// customer is offered when their chosen screening is crowded. The optional
// limit query parameter defaults to 2.
func (h *PublicHandler) GetAlternatives(c echo.Context) error {
	titleID, sid, err := showtimePath(c)
	if err != nil {
		return bookingError(c, err)
	}
	limit := 2
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	alts, err := h.Ledger.AlternativeViews(titleID, sid, limit)
	if err != nil {
		return bookingError(c, err)
	}
	items := make([]publicShowtime, 0, len(alts))
	for _, a := range alts {
		items = append(items, toPublicShowtime(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// showtimePath parses the :id/:sid pair, mapping malformed values onto the
// matching not-found sentinels.
func showtimePath(c echo.Context) (titleID, sid uint64, err error) {
	titleID, ok := pathID(c, "id")
	if !ok {
		return 0, 0, booking.ErrTitleNotListed
	}
	sid, ok = pathID(c, "sid")
	if !ok {
		return 0, 0, booking.ErrShowtimeNotFound
	}
	return titleID, sid, nil
}
