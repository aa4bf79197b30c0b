package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
	"github.com/cine-estrella/box-office/internal/queue"
	"github.com/cine-estrella/box-office/internal/repository"
	queue_publisher "github.com/cine-estrella/box-office/internal/service"
)

// TicketHandler serves the authenticated customer endpoints: buying,
// listing and cancelling tickets. The authenticated account maps onto the
// ledger's customer identity through its email.
type TicketHandler struct {
	Ledger *booking.Ledger
	Users  *repository.UserRepo
}

func NewTicketHandler(l *booking.Ledger, users *repository.UserRepo) *TicketHandler {
	if l == nil || users == nil {
		panic("nil dependency passed to NewTicketHandler")
	}
	return &TicketHandler{Ledger: l, Users: users}
}

type reserveReq struct {
	TitleID    uint64   `json:"title_id" validate:"required"`
	ShowtimeID uint64   `json:"showtime_id" validate:"required"`
	Seats      []string `json:"seats" validate:"required,min=1,dive,required"`
	WantAddon  bool     `json:"want_addon"`
}

// ticketView is a ticket as returned to its owner.
type ticketView struct {
	Code       string    `json:"code"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"starts_at"`
	Room       int       `json:"room"`
	Seats      []string  `json:"seats"`
	AddonName  string    `json:"addon_name,omitempty"`
	AddonPrice int       `json:"addon_price,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}

func toTicketView(t *booking.Ticket) ticketView {
	return ticketView{
		Code:       t.Code,
		Title:      t.Title.Name,
		StartsAt:   t.Showtime.StartsAt,
		Room:       t.Showtime.Room.Number,
		Seats:      t.Seats,
		AddonName:  t.AddonName,
		AddonPrice: t.AddonPrice,
		IssuedAt:   t.IssuedAt,
	}
}

// Reserve handles POST /v1/tickets. It claims the requested seats for the
// authenticated customer; the reservation either fully succeeds or leaves
// the seat map untouched. On success a ticket.issued event is published
// best-effort.
func (h *TicketHandler) Reserve(c echo.Context) error {
	customer, err := h.currentCustomer(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.Ledger.Reserve(customer, req.TitleID, req.ShowtimeID, req.Seats, req.WantAddon)
	if err != nil {
		return bookingError(c, err)
	}

	// fire and forget; a broker outage must not void the sale
	_ = queue_publisher.PublishTicketIssued(c.Request().Context(), queue.TicketIssuedEvent{
		Code:          ticket.Code,
		Title:         ticket.Title.Name,
		StartsAt:      ticket.Showtime.StartsAt.Format(time.RFC3339),
		Room:          ticket.Showtime.Room.Number,
		Seats:         ticket.Seats,
		CustomerEmail: customer.Email,
		AddonName:     ticket.AddonName,
		AddonPrice:    ticket.AddonPrice,
		IssuedAt:      ticket.IssuedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"ticket": toTicketView(ticket)})
}

// ListMine handles GET /v1/my-tickets, returning the customer's active
// tickets in purchase order. The list is a snapshot taken under the ledger
// lock; reading Customer.Tickets directly would race concurrent bookings.
func (h *TicketHandler) ListMine(c echo.Context) error {
	customer, err := h.currentCustomer(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets := h.Ledger.TicketsFor(customer.Email)
	items := make([]ticketView, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, toTicketView(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Cancel handles DELETE /v1/tickets/:code. The authenticated customer is
// always passed to the ledger as the requester, so cancelling someone
// else's ticket fails with 403 and a ticket whose showtime already started
// with 409. A cancelled ticket frees its seats immediately.
func (h *TicketHandler) Cancel(c echo.Context) error {
	customer, err := h.currentCustomer(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	code := c.Param("code")

	// snapshot before the cancel removes the ticket
	ticket, err := h.Ledger.FindTicket(code)
	if err != nil {
		return bookingError(c, err)
	}
	ev := queue.TicketCancelledEvent{
		Code:          ticket.Code,
		Title:         ticket.Title.Name,
		StartsAt:      ticket.Showtime.StartsAt.Format(time.RFC3339),
		Room:          ticket.Showtime.Room.Number,
		Seats:         ticket.Seats,
		CustomerEmail: customer.Email,
	}

	if err := h.Ledger.Cancel(code, customer); err != nil {
		return bookingError(c, err)
	}

	ev.CancelledAt = time.Now().UTC().Format(time.RFC3339)
	_ = queue_publisher.PublishTicketCancelled(c.Request().Context(), ev)

	return c.NoContent(http.StatusNoContent)
}

// currentCustomer resolves the JWT identity into the ledger's customer
// record, creating it on first purchase.
func (h *TicketHandler) currentCustomer(c echo.Context) (*booking.Customer, error) {
	uid, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	u, err := h.Users.GetByID(uid)
	if err != nil {
		return nil, err
	}
	return h.Ledger.Customer(u.Name, u.Email), nil
}
