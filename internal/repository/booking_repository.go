package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingRepo creates, cancels and reads bookings. Seat labels are stored
// in booking_seats with UNIQUE KEY (show_id, seat_label); rows exist only
// while the owning booking is CONFIRMED. Together with the guarded
// decrement of shows.available_seats this makes the reserve step atomic:
// of two concurrent requests for an overlapping seat set, exactly one
// commits and the other rolls back with ErrSeatUnavailable.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create reserves seats and persists a CONFIRMED booking in one
// transaction. It returns ErrNotFound when the show does not exist and
// ErrSeatUnavailable when a requested seat is already sold or the show
// lacks capacity; in both cases no state changes. The caller must pass
// a non-empty list of unique seat labels.
func (r *BookingRepo) Create(ctx context.Context, userID, showID uint64, seats []string) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the show row so concurrent bookings for the same show serialize
	// here; bookings for different shows do not contend.
	var priceCents, available uint32
	err = tx.QueryRowContext(ctx,
		"SELECT price_cents, available_seats FROM shows WHERE id=? FOR UPDATE",
		showID).Scan(&priceCents, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if uint32(len(seats)) > available {
		return nil, ErrSeatUnavailable
	}

	total := priceCents * uint32(len(seats))
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (user_id, show_id, status, total_price_cents) VALUES (?,?,?,?)",
		userID, showID, model.BookingConfirmed, total)
	if err != nil {
		return nil, err
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Bulk insert the seat rows; the unique key turns a double-sell into a
	// duplicate-key error and the whole transaction rolls back.
	insert := "INSERT INTO booking_seats (booking_id, show_id, seat_label) VALUES "
	args := make([]interface{}, 0, len(seats)*3)
	for i, label := range seats {
		if i > 0 {
			insert += ","
		}
		insert += "(?,?,?)"
		args = append(args, bookingID, showID, label)
	}
	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSeatUnavailable
		}
		return nil, err
	}

	// Guarded decrement; the WHERE clause keeps the counter non-negative
	// even if the row lock were ever bypassed.
	dec, err := tx.ExecContext(ctx,
		"UPDATE shows SET available_seats = available_seats - ? WHERE id=? AND available_seats >= ?",
		len(seats), showID, len(seats))
	if err != nil {
		return nil, err
	}
	if n, err := dec.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrSeatUnavailable
	}

	b := &model.Booking{
		ID:              uint64(bookingID),
		UserID:          userID,
		ShowID:          showID,
		Seats:           append([]string(nil), seats...),
		Status:          model.BookingConfirmed,
		TotalPriceCents: total,
	}
	err = tx.QueryRowContext(ctx,
		"SELECT booked_at, created_at, updated_at FROM bookings WHERE id=?",
		bookingID).Scan(&b.BookedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// Cancel moves a booking to CANCELLED and releases its seats back to the
// show's inventory. Cancelling an already-cancelled booking is a no-op
// returning the current state. Only the booking's owner or an admin may
// cancel; ErrForbidden is returned otherwise, before any mutation.
func (r *BookingRepo) Cancel(ctx context.Context, bookingID, requesterID uint64, isAdmin bool) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	b := &model.Booking{ID: bookingID}
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, show_id, status, total_price_cents, booked_at, created_at, updated_at
		 FROM bookings WHERE id=? FOR UPDATE`, bookingID).Scan(
		&b.UserID, &b.ShowID, &b.Status, &b.TotalPriceCents, &b.BookedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isAdmin && b.UserID != requesterID {
		return nil, ErrForbidden
	}

	if b.Status == model.BookingCancelled {
		// Idempotent: seats were already released.
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		committed = true
		b.Seats = []string{}
		return b, nil
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT seat_label FROM booking_seats WHERE booking_id=? ORDER BY seat_label", bookingID)
	if err != nil {
		return nil, err
	}
	seats := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			rows.Close()
			return nil, err
		}
		seats = append(seats, label)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// Deleting the seat rows is what frees the labels for resale; the
	// counter increment restores capacity in the same transaction.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM booking_seats WHERE booking_id=?", bookingID); err != nil {
		return nil, err
	}
	if len(seats) > 0 {
		if _, err := tx.ExecContext(ctx,
			"UPDATE shows SET available_seats = available_seats + ? WHERE id=?",
			len(seats), b.ShowID); err != nil {
			return nil, err
		}
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", model.BookingCancelled, bookingID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	b.Status = model.BookingCancelled
	b.Seats = seats
	return b, nil
}

// GetByID fetches a booking with its seat labels.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	b := &model.Booking{ID: id}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, show_id, status, total_price_cents, booked_at, created_at, updated_at
		 FROM bookings WHERE id=? LIMIT 1`, id).Scan(
		&b.UserID, &b.ShowID, &b.Status, &b.TotalPriceCents, &b.BookedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	seats, err := r.seatsFor(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	b.Seats = seats[id]
	if b.Seats == nil {
		b.Seats = []string{}
	}
	return b, nil
}

// ListByUser returns all of a user's bookings, newest first, with seats.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, show_id, status, total_price_cents, booked_at, created_at, updated_at
		 FROM bookings WHERE user_id=? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ShowID, &b.Status, &b.TotalPriceCents,
			&b.BookedAt, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Seats = []string{}
		bookings = append(bookings, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return bookings, nil
	}

	seatsByBooking, err := r.seatsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if s, ok := seatsByBooking[bookings[i].ID]; ok {
			bookings[i].Seats = s
		}
	}
	return bookings, nil
}

// seatsFor loads seat labels for a set of bookings in one query. Cancelled
// bookings have no rows and simply come back empty.
func (r *BookingRepo) seatsFor(ctx context.Context, bookingIDs []uint64) (map[uint64][]string, error) {
	placeholders := make([]string, len(bookingIDs))
	args := make([]interface{}, len(bookingIDs))
	for i, id := range bookingIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT booking_id, seat_label FROM booking_seats WHERE booking_id IN ("+
			strings.Join(placeholders, ",")+") ORDER BY booking_id, seat_label", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64][]string, len(bookingIDs))
	for rows.Next() {
		var id uint64
		var label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, err
		}
		out[id] = append(out[id], label)
	}
	return out, rows.Err()
}
