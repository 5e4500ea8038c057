package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CityRepo persists cities, the top of the venue hierarchy.
type CityRepo struct{ DB *sql.DB }

func NewCityRepo(db *sql.DB) *CityRepo { return &CityRepo{DB: db} }

// Create inserts a city and populates the generated ID.
func (r *CityRepo) Create(ctx context.Context, c *model.City) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO cities (name, state, country) VALUES (?,?,?)",
		c.Name, c.State, c.Country)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a single city.
func (r *CityRepo) GetByID(ctx context.Context, id uint64) (model.City, error) {
	var c model.City
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,state,country,created_at FROM cities WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.State, &c.Country, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

// List returns all cities ordered by name.
func (r *CityRepo) List(ctx context.Context) ([]model.City, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,state,country,created_at FROM cities ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	cities := make([]model.City, 0)
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.Country, &c.CreatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// Update rewrites a city's fields.
func (r *CityRepo) Update(ctx context.Context, c *model.City) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE cities SET name=?, state=?, country=? WHERE id=?",
		c.Name, c.State, c.Country, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Either the row is gone or the values did not change; distinguish.
		if _, gerr := r.GetByID(ctx, c.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a city row.
func (r *CityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM cities WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
