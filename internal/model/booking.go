package model

import "time"

// Booking status values.  A booking is created CONFIRMED and can only move
// to CANCELLED, which is terminal.
const (
    BookingConfirmed = "CONFIRMED"
    BookingCancelled = "CANCELLED"
)

// Booking records a user's purchase of one or more seats for a show.
// Seat labels live in the booking_seats table; a UNIQUE(show_id, seat_label)
// key there is what guarantees a seat is sold at most once per show.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who made the booking.
//  ShowID          – show being booked.
//  Seats           – seat labels held by this booking (e.g. "A1").
//  Status          – CONFIRMED or CANCELLED.
//  TotalPriceCents – price_cents * len(Seats) at booking time.
//  BookedAt        – when the booking was placed.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Booking struct {
    ID              uint64    `json:"id"`              // bookings.id
    UserID          uint64    `json:"userId"`          // bookings.user_id
    ShowID          uint64    `json:"showId"`          // bookings.show_id
    Seats           []string  `json:"seats"`           // booking_seats.seat_label rows
    Status          string    `json:"status"`          // bookings.status
    TotalPriceCents uint32    `json:"totalPriceCents"` // bookings.total_price_cents
    BookedAt        time.Time `json:"bookedAt"`        // bookings.booked_at
    CreatedAt       time.Time `json:"createdAt"`       // bookings.created_at
    UpdatedAt       time.Time `json:"updatedAt"`       // bookings.updated_at
}
