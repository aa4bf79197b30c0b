// Package handler exposes the HTTP surface of the box office: auth, public
// catalog browsing, customer ticketing and admin management. Handlers
// translate booking sentinel errors into HTTP statuses; the booking package
// itself never sees a request.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
)

// getUserID extracts the authenticated user ID placed in the context by the
// JWT middleware. JSON decoding turns numeric claims into float64, so a few
// shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// bookingError maps a booking sentinel to its HTTP response. Unrecognized
// errors become a 500 without leaking internals.
func bookingError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrTitleNotListed),
		errors.Is(err, booking.ErrShowtimeNotFound),
		errors.Is(err, booking.ErrTicketNotFound),
		errors.Is(err, booking.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrSeatTaken),
		errors.Is(err, booking.ErrRoomFull),
		errors.Is(err, booking.ErrDuplicateShowtime),
		errors.Is(err, booking.ErrShowtimeOverlap),
		errors.Is(err, booking.ErrDuplicateRoom),
		errors.Is(err, booking.ErrTooLateToCancel):
		status = http.StatusConflict
	case errors.Is(err, booking.ErrUnknownSeat),
		errors.Is(err, booking.ErrInvalidDimension):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrNotAuthorized):
		status = http.StatusForbidden
	}
	if status == http.StatusInternalServerError {
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
