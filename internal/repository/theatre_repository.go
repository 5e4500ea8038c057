package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// TheatreRepo persists theatres. A theatre belongs to a city.
type TheatreRepo struct{ DB *sql.DB }

func NewTheatreRepo(db *sql.DB) *TheatreRepo { return &TheatreRepo{DB: db} }

// Create inserts a theatre and populates the generated ID.
func (r *TheatreRepo) Create(ctx context.Context, t *model.Theatre) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO theatres (city_id, name, location) VALUES (?,?,?)",
		t.CityID, t.Name, t.Location)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a single theatre.
func (r *TheatreRepo) GetByID(ctx context.Context, id uint64) (model.Theatre, error) {
	var t model.Theatre
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,city_id,name,location,created_at FROM theatres WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.CityID, &t.Name, &t.Location, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

// List returns all theatres, optionally filtered by city (cityID 0 = all).
func (r *TheatreRepo) List(ctx context.Context, cityID uint64) ([]model.Theatre, error) {
	q := "SELECT id,city_id,name,location,created_at FROM theatres"
	args := []interface{}{}
	if cityID != 0 {
		q += " WHERE city_id=?"
		args = append(args, cityID)
	}
	q += " ORDER BY name"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	theatres := make([]model.Theatre, 0)
	for rows.Next() {
		var t model.Theatre
		if err := rows.Scan(&t.ID, &t.CityID, &t.Name, &t.Location, &t.CreatedAt); err != nil {
			return nil, err
		}
		theatres = append(theatres, t)
	}
	return theatres, rows.Err()
}

// Update rewrites a theatre's fields.
func (r *TheatreRepo) Update(ctx context.Context, t *model.Theatre) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE theatres SET city_id=?, name=?, location=? WHERE id=?",
		t.CityID, t.Name, t.Location, t.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, t.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a theatre row.
func (r *TheatreRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM theatres WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
