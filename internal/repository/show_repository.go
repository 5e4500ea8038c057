// Package repository: data access for shows. A Show is a scheduled screening
// of a movie on a screen with its own live seat inventory. The
// available_seats counter is only ever changed through the guarded updates
// in BookingRepo so it can never go negative.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

func NewShowRepo(db *sql.DB) *ShowRepo { return &ShowRepo{db: db} }

// DB exposes the underlying sql.DB. It allows callers to begin transactions
// spanning multiple repositories.
func (r *ShowRepo) DB() *sql.DB { return r.db }

// ShowDetail is a show joined with its movie and screen summaries, used by
// the public listing endpoints.
type ShowDetail struct {
	model.Show
	MovieTitle   string `json:"movieTitle"`
	ScreenNumber uint32 `json:"screenNumber"`
	TheatreID    uint64 `json:"theatreId"`
}

// Create inserts a new show. When AvailableSeats is zero it is initialised
// from the screen's total_seats, so a fresh show starts fully open.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	if s.AvailableSeats == 0 {
		if err := r.db.QueryRowContext(ctx,
			"SELECT total_seats FROM screens WHERE id=?", s.ScreenID).Scan(&s.AvailableSeats); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO shows (movie_id, screen_id, starts_at, price_cents, available_seats) VALUES (?,?,?,?,?)",
		s.MovieID, s.ScreenID, s.StartsAt, s.PriceCents, s.AvailableSeats)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

const showDetailQuery = `SELECT s.id, s.movie_id, s.screen_id, s.starts_at, s.price_cents, s.available_seats,
       s.created_at, s.updated_at, m.title, sc.screen_number, sc.theatre_id
FROM shows s
JOIN movies m ON m.id = s.movie_id
JOIN screens sc ON sc.id = s.screen_id`

func scanShowDetail(row interface{ Scan(...interface{}) error }) (ShowDetail, error) {
	var d ShowDetail
	err := row.Scan(&d.ID, &d.MovieID, &d.ScreenID, &d.StartsAt, &d.PriceCents, &d.AvailableSeats,
		&d.CreatedAt, &d.UpdatedAt, &d.MovieTitle, &d.ScreenNumber, &d.TheatreID)
	return d, err
}

// GetByID fetches a show with its movie and screen summaries.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (ShowDetail, error) {
	d, err := scanShowDetail(r.db.QueryRowContext(ctx, showDetailQuery+" WHERE s.id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrNotFound
	}
	return d, err
}

// List returns all shows with movie and screen summaries, soonest first.
func (r *ShowRepo) List(ctx context.Context) ([]ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, showDetailQuery+" ORDER BY s.starts_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]ShowDetail, 0)
	for rows.Next() {
		d, err := scanShowDetail(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, d)
	}
	return shows, rows.Err()
}

// Update rewrites a show's schedule and pricing. The available_seats
// counter is deliberately not touched here; only the booking transaction
// may move it.
func (r *ShowRepo) Update(ctx context.Context, s *model.Show) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE shows SET movie_id=?, screen_id=?, starts_at=?, price_cents=? WHERE id=?",
		s.MovieID, s.ScreenID, s.StartsAt, s.PriceCents, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, s.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a show row. Bookings referencing the show keep it alive
// through the FK constraint; the database error is surfaced unchanged.
func (r *ShowRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shows WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
