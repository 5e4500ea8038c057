package model

import "time"

// City is a location grouping for theatres.
type City struct {
    ID        uint64    `json:"id"`        // cities.id
    Name      string    `json:"name"`      // cities.name
    State     string    `json:"state"`     // cities.state
    Country   string    `json:"country"`   // cities.country
    CreatedAt time.Time `json:"createdAt"` // cities.created_at
}

// Theatre is a venue located in a city.
type Theatre struct {
    ID        uint64    `json:"id"`        // theatres.id
    CityID    uint64    `json:"cityId"`    // theatres.city_id
    Name      string    `json:"name"`      // theatres.name
    Location  string    `json:"location"`  // theatres.location
    CreatedAt time.Time `json:"createdAt"` // theatres.created_at
}

// Screen is an auditorium inside a theatre.  TotalSeats is the capacity
// used to initialise a show's available seat counter.
type Screen struct {
    ID           uint64    `json:"id"`           // screens.id
    TheatreID    uint64    `json:"theatreId"`    // screens.theatre_id
    ScreenNumber uint32    `json:"screenNumber"` // screens.screen_number
    TotalSeats   uint32    `json:"totalSeats"`   // screens.total_seats
    CreatedAt    time.Time `json:"createdAt"`    // screens.created_at
}

// Movie holds the catalog entry for a film.
type Movie struct {
    ID          uint64     `json:"id"`                    // movies.id
    Title       string     `json:"title"`                 // movies.title
    Genre       string     `json:"genre"`                 // movies.genre
    DurationMin uint32     `json:"durationMin"`           // movies.duration_min
    ReleaseDate *time.Time `json:"releaseDate,omitempty"` // movies.release_date (nullable)
    Language    string     `json:"language"`              // movies.language
    CreatedAt   time.Time  `json:"createdAt"`             // movies.created_at
}

// Review is a user's rating of a movie.  Rating is constrained to 1..5 at
// the handler boundary.
type Review struct {
    ID        uint64    `json:"id"`        // reviews.id
    UserID    uint64    `json:"userId"`    // reviews.user_id
    MovieID   uint64    `json:"movieId"`   // reviews.movie_id
    Rating    uint8     `json:"rating"`    // reviews.rating
    Comment   string    `json:"comment"`   // reviews.comment
    CreatedAt time.Time `json:"createdAt"` // reviews.created_at
}
