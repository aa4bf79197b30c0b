// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them.
package queue

// TicketIssuedEvent is published after a reservation succeeds. It carries
// enough for downstream consumers to log or notify without reaching back
// into the ledger.
type TicketIssuedEvent struct {
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	StartsAt      string   `json:"starts_at"`
	Room          int      `json:"room"`
	Seats         []string `json:"seats"`
	CustomerEmail string   `json:"customer_email"`
	AddonName     string   `json:"addon_name,omitempty"`
	AddonPrice    int      `json:"addon_price,omitempty"`
	IssuedAt      string   `json:"issued_at"`
}

// TicketCancelledEvent is published after a ticket is voided and its seats
// returned to the pool.
type TicketCancelledEvent struct {
	Code          string   `json:"code"`
	Title         string   `json:"title"`
	StartsAt      string   `json:"starts_at"`
	Room          int      `json:"room"`
	Seats         []string `json:"seats"`
	CustomerEmail string   `json:"customer_email"`
	CancelledAt   string   `json:"cancelled_at"`
}
