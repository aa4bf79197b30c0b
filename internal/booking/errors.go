// Package booking implements the cinema's seat inventory and ticket
// lifecycle: rooms with their per-showtime seat maps, the title catalog,
// ticket issuance and cancellation, and sales reporting. All state lives in
// memory inside a Ledger value; nothing in this package performs I/O or
// logging. Failures are reported through the sentinel errors defined in
// this file so that callers (the HTTP layer) can map each condition with
// errors.Is.
package booking

import "errors"

// ErrInvalidDimension is returned when a seat map is created with a row or
// column count below one.
var ErrInvalidDimension = errors.New("invalid seat map dimensions")

// ErrUnknownSeat is returned when a seat label does not exist in the seat
// map it is applied to. The offending label is wrapped around this sentinel.
var ErrUnknownSeat = errors.New("unknown seat")

// ErrSeatTaken is returned when a reservation names a seat that is already
// occupied. The offending label is wrapped around this sentinel.
var ErrSeatTaken = errors.New("seat already taken")

// ErrDuplicateRoom is returned when a room is added with a number that is
// already registered in the ledger.
var ErrDuplicateRoom = errors.New("room already exists")

// ErrRoomNotFound is returned when a showtime references a room number the
// ledger does not know about.
var ErrRoomNotFound = errors.New("room not found")

// ErrDuplicateShowtime is returned when a title already has a showtime with
// the same start time in the same room.
var ErrDuplicateShowtime = errors.New("duplicate showtime")

// ErrShowtimeOverlap is returned when a new showtime's running interval
// intersects another showtime already scheduled in the same room.
var ErrShowtimeOverlap = errors.New("showtime overlaps another in the same room")

// ErrTitleNotListed is returned when an operation references a title that is
// not part of the ledger's catalog.
var ErrTitleNotListed = errors.New("title not listed")

// ErrShowtimeNotFound is returned when a showtime is not among the
// referenced title's showtimes.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrRoomFull is returned when every seat of the showtime is occupied.
var ErrRoomFull = errors.New("room full")

// ErrTicketNotFound is returned when a ticket code is absent from the
// ledger. A cancelled ticket's code yields this error on a second attempt.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrNotAuthorized is returned when a cancellation names a requesting
// customer who does not own the ticket.
var ErrNotAuthorized = errors.New("ticket belongs to another customer")

// ErrTooLateToCancel is returned when a cancellation arrives at or after
// the showtime's start.
var ErrTooLateToCancel = errors.New("showtime already started")

// ErrNoSales is the explicit no-data indicator produced by Report when no
// ticket falls inside the requested window.
var ErrNoSales = errors.New("no sales in the selected period")
