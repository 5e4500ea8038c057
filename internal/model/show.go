package model

import "time"

// Show represents a scheduled screening of a movie on a particular screen.
// AvailableSeats is the live inventory counter decremented by confirmed
// bookings and restored by cancellations; it never goes negative.
//
// Fields:
//  ID             – primary key identifier.
//  MovieID        – movie being screened.
//  ScreenID       – screen where the show takes place.
//  StartsAt       – when the show begins.
//  PriceCents     – per-seat ticket price in cents.
//  AvailableSeats – seats still open for booking.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Show struct {
    ID             uint64    `json:"id"`             // shows.id
    MovieID        uint64    `json:"movieId"`        // shows.movie_id
    ScreenID       uint64    `json:"screenId"`       // shows.screen_id
    StartsAt       time.Time `json:"startsAt"`       // shows.starts_at
    PriceCents     uint32    `json:"priceCents"`     // shows.price_cents
    AvailableSeats uint32    `json:"availableSeats"` // shows.available_seats
    CreatedAt      time.Time `json:"createdAt"`      // shows.created_at
    UpdatedAt      time.Time `json:"updatedAt"`      // shows.updated_at
}
