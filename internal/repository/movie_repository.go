package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// MovieRepo persists the movie catalog.
type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

const movieColumns = "id,title,genre,duration_min,release_date,language,created_at"

func scanMovie(row interface{ Scan(...interface{}) error }) (model.Movie, error) {
	var m model.Movie
	var release sql.NullTime
	err := row.Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMin, &release, &m.Language, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	if release.Valid {
		t := release.Time
		m.ReleaseDate = &t
	}
	return m, nil
}

// Create inserts a movie and populates the generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	var release interface{}
	if m.ReleaseDate != nil {
		release = *m.ReleaseDate
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO movies (title, genre, duration_min, release_date, language) VALUES (?,?,?,?,?)",
		m.Title, m.Genre, m.DurationMin, release, m.Language)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a single movie.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	m, err := scanMovie(r.DB.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrNotFound
	}
	return m, err
}

// List returns all movies ordered by title.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Update rewrites a movie's fields.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	var release interface{}
	if m.ReleaseDate != nil {
		release = *m.ReleaseDate
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE movies SET title=?, genre=?, duration_min=?, release_date=?, language=? WHERE id=?",
		m.Title, m.Genre, m.DurationMin, release, m.Language, m.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, m.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a movie row.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM movies WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
