package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
)

// showtimeSalesView is one row of the per-showtime breakdown in a report
// response.
type showtimeSalesView struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	Room     int       `json:"room"`
	Seats    int       `json:"seats"`
}

// Report handles GET /v1/admin/report. Optional from/to query parameters
// (RFC 3339) bound the window by showtime start; either side may be open.
// An empty window yields a 200 with an explicit no-sales message rather
// than an empty report.
func (h *AdminHandler) Report(c echo.Context) error {
	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from, expected RFC 3339"})
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to, expected RFC 3339"})
	}

	rep, err := h.Ledger.Report(from, to)
	if err != nil {
		if errors.Is(err, booking.ErrNoSales) {
			return c.JSON(http.StatusOK, echo.Map{"message": "no sales in the selected period"})
		}
		return bookingError(c, err)
	}

	byShowtime := make([]showtimeSalesView, 0, len(rep.ByShowtime))
	for _, row := range rep.ByShowtime {
		byShowtime = append(byShowtime, showtimeSalesView(row))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"top_title":      rep.TopTitle,
		"seats_by_title": rep.SeatsByTitle,
		"by_showtime":    byShowtime,
		"seats_by_room":  rep.SeatsByRoom,
		"tickets_sold":   rep.TicketsSold,
	})
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
