package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ScreenRepo persists screens (auditoriums). A screen's total_seats is the
// capacity copied into a show's available_seats counter at show creation.
type ScreenRepo struct{ DB *sql.DB }

func NewScreenRepo(db *sql.DB) *ScreenRepo { return &ScreenRepo{DB: db} }

// Create inserts a screen and populates the generated ID.
func (r *ScreenRepo) Create(ctx context.Context, s *model.Screen) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO screens (theatre_id, screen_number, total_seats) VALUES (?,?,?)",
		s.TheatreID, s.ScreenNumber, s.TotalSeats)
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

// GetByID fetches a single screen.
func (r *ScreenRepo) GetByID(ctx context.Context, id uint64) (model.Screen, error) {
	var s model.Screen
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,theatre_id,screen_number,total_seats,created_at FROM screens WHERE id=? LIMIT 1",
		id).Scan(&s.ID, &s.TheatreID, &s.ScreenNumber, &s.TotalSeats, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrNotFound
	}
	return s, err
}

// List returns all screens, optionally filtered by theatre (theatreID 0 = all).
func (r *ScreenRepo) List(ctx context.Context, theatreID uint64) ([]model.Screen, error) {
	q := "SELECT id,theatre_id,screen_number,total_seats,created_at FROM screens"
	args := []interface{}{}
	if theatreID != 0 {
		q += " WHERE theatre_id=?"
		args = append(args, theatreID)
	}
	q += " ORDER BY theatre_id, screen_number"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	screens := make([]model.Screen, 0)
	for rows.Next() {
		var s model.Screen
		if err := rows.Scan(&s.ID, &s.TheatreID, &s.ScreenNumber, &s.TotalSeats, &s.CreatedAt); err != nil {
			return nil, err
		}
		screens = append(screens, s)
	}
	return screens, rows.Err()
}

// Update rewrites a screen's fields.
func (r *ScreenRepo) Update(ctx context.Context, s *model.Screen) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE screens SET theatre_id=?, screen_number=?, total_seats=? WHERE id=?",
		s.TheatreID, s.ScreenNumber, s.TotalSeats, s.ID)
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

// Delete removes a screen row.
func (r *ScreenRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM screens WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
