package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
)

// AdminHandler serves the catalog management endpoints. There is no seeding
// routine: rooms, titles and showtimes enter a running instance through
// these handlers.
type AdminHandler struct {
	Ledger *booking.Ledger
}

func NewAdminHandler(l *booking.Ledger) *AdminHandler {
	if l == nil {
		panic("nil ledger passed to NewAdminHandler")
	}
	return &AdminHandler{Ledger: l}
}

type createRoomReq struct {
	Number int `json:"number" validate:"required,min=1"`
	Rows   int `json:"rows" validate:"required,min=1"`
	Cols   int `json:"cols" validate:"required,min=1"`
}

type createTitleReq struct {
	Name       string `json:"name" validate:"required"`
	Genre      string `json:"genre" validate:"required"`
	RuntimeMin int    `json:"runtime_min" validate:"required,min=1"`
	Rating     string `json:"rating" validate:"required"`
	AddonName  string `json:"addon_name"`
	AddonPrice int    `json:"addon_price" validate:"min=0"`
}

type createShowtimeReq struct {
	Room     int       `json:"room" validate:"required,min=1"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
}

// CreateRoom handles POST /v1/admin/rooms.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	room, err := h.Ledger.AddRoom(req.Number, req.Rows, req.Cols)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"number": room.Number,
		"rows":   room.Rows,
		"cols":   room.Cols,
		"seats":  room.Rows * room.Cols,
	})
}

// CreateTitle handles POST /v1/admin/titles. An addon_name marks the title
// as carrying a collectible; addon_price 0 makes it free.
func (h *AdminHandler) CreateTitle(c echo.Context) error {
	var req createTitleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	title := h.Ledger.AddTitle(req.Name, req.Genre, req.RuntimeMin, req.Rating, req.AddonName, req.AddonPrice)
	view, err := h.Ledger.TitleView(title.ID)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": toPublicTitle(view)})
}

// CreateShowtime handles POST /v1/admin/titles/:id/showtimes. The seat map
// is created fully free; scheduling conflicts in the room are rejected.
func (h *AdminHandler) CreateShowtime(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid title id"})
	}
	var req createShowtimeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	show, err := h.Ledger.AddShowtime(id, req.Room, req.StartsAt)
	if err != nil {
		return bookingError(c, err)
	}
	// a fresh showtime is fully free; only immutable fields are read here
	return c.JSON(http.StatusCreated, publicShowtime{
		ID:        show.ID,
		StartsAt:  show.StartsAt,
		Room:      req.Room,
		Occupancy: 0,
		Full:      false,
	})
}
