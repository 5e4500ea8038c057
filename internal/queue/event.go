// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking commits. It carries
// enough detail for downstream consumers to log or notify without
// querying the primary database.
type BookingConfirmedEvent struct {
	BookingID       uint64   `json:"booking_id"`
	UserID          uint64   `json:"user_id"`
	ShowID          uint64   `json:"show_id"`
	MovieTitle      string   `json:"movie_title"`
	StartsAt        string   `json:"starts_at"`
	Seats           []string `json:"seats"`
	TotalPriceCents uint32   `json:"total_price_cents"`
	BookedAt        string   `json:"booked_at"`
}
