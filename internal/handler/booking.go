package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	queuepub "github.com/iliyamo/movie-ticket-booking/internal/service"
)

// maxSeatsPerBooking caps one booking to a sane group size.
const maxSeatsPerBooking = 10

// BookingHandler exposes seat booking, cancellation and booking lookup.
// The reserve-or-reject decision lives entirely inside BookingRepo's
// transaction; this layer validates input, enforces ownership on reads
// and emits the confirmation event after a successful commit.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Shows    *repository.ShowRepo
}

func NewBookingHandler(b *repository.BookingRepo, s *repository.ShowRepo) *BookingHandler {
	return &BookingHandler{Bookings: b, Shows: s}
}

type createBookingReq struct {
	Show       uint64   `json:"show"`
	Seats      []string `json:"seats"`
	TotalPrice *uint32  `json:"totalPrice"`
}

// normalizeSeats trims and uppercases seat labels, preserving order. It
// returns the cleaned list and the offending label when one is invalid:
// malformed (empty after trimming, too long, or containing characters
// outside A-Z and 0-9) or a repeat of an earlier label. Requesting the
// same seat twice is a client error, not something to paper over, since
// the quoted totalPrice would no longer match what the client expects
// to pay.
func normalizeSeats(raw []string) ([]string, string) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		label := strings.ToUpper(strings.TrimSpace(s))
		if label == "" || len(label) > 8 {
			return nil, s
		}
		for _, r := range label {
			if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				return nil, s
			}
		}
		if _, dup := seen[label]; dup {
			return nil, s
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out, ""
}

// Create books seats on a show for the caller. When the client supplies
// totalPrice it must match the server-side computation exactly; a
// mismatch is rejected before any seat is touched. Seat conflicts come
// back as 409 so clients can re-fetch availability and retry.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _ := caller(c)

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Show == 0 {
		return fail(c, http.StatusBadRequest, "show is required")
	}
	if len(req.Seats) == 0 {
		return fail(c, http.StatusBadRequest, "seats are required")
	}
	seats, bad := normalizeSeats(req.Seats)
	if bad != "" {
		return fail(c, http.StatusBadRequest, "invalid seat label: "+bad)
	}
	if len(seats) > maxSeatsPerBooking {
		return fail(c, http.StatusBadRequest, "too many seats in one booking")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if req.TotalPrice != nil {
		show, err := h.Shows.GetByID(ctx, req.Show)
		if err != nil {
			return failFromErr(c, err, "show not found")
		}
		if expected := show.PriceCents * uint32(len(seats)); *req.TotalPrice != expected {
			return fail(c, http.StatusBadRequest, "totalPrice does not match show price")
		}
	}

	booking, err := h.Bookings.Create(ctx, userID, req.Show, seats)
	if err != nil {
		return failFromErr(c, err, "show not found")
	}

	h.publishConfirmed(booking.ID, userID, booking.ShowID, booking.Seats, booking.TotalPriceCents, booking.BookedAt)

	return ok(c, http.StatusCreated, echo.Map{"booking": booking})
}

// Cancel releases a booking's seats back to the show. Owners cancel
// their own bookings; admins can cancel any. Already-cancelled bookings
// return 200 with the current state.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid booking id")
	}
	userID, isAdmin := caller(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	booking, err := h.Bookings.Cancel(ctx, id, userID, isAdmin)
	if err != nil {
		return failFromErr(c, err, "booking not found")
	}
	return ok(c, http.StatusOK, echo.Map{"booking": booking})
}

// Get returns a single booking to its owner or an admin.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid booking id")
	}
	userID, isAdmin := caller(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "booking not found")
	}
	if !isAdmin && booking.UserID != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}
	return ok(c, http.StatusOK, echo.Map{"booking": booking})
}

// ListForUser returns all bookings of the user in the path. Non-admins
// may only list their own.
func (h *BookingHandler) ListForUser(c echo.Context) error {
	targetID, err := pathID(c, "userId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	userID, isAdmin := caller(c)
	if !isAdmin && targetID != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, targetID)
	if err != nil {
		return failFromErr(c, err, "bookings not found")
	}
	return ok(c, http.StatusOK, echo.Map{"bookings": bookings})
}

// publishConfirmed emits the booking.confirmed event on a detached
// context with its own timeout. Broker failures are logged by the
// publisher and never affect the already-committed booking.
func (h *BookingHandler) publishConfirmed(bookingID, userID, showID uint64, seats []string, totalCents uint32, bookedAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	ev := queue.BookingConfirmedEvent{
		BookingID:       bookingID,
		UserID:          userID,
		ShowID:          showID,
		Seats:           seats,
		TotalPriceCents: totalCents,
		BookedAt:        bookedAt.UTC().Format(time.RFC3339),
	}
	if detail, err := h.Shows.GetByID(ctx, showID); err == nil {
		ev.MovieTitle = detail.MovieTitle
		ev.StartsAt = detail.StartsAt.UTC().Format(time.RFC3339)
	}
	_ = queuepub.PublishBookingConfirmed(ctx, ev)
}
