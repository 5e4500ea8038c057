package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ReviewRepo persists movie reviews.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

const reviewColumns = "id,user_id,movie_id,rating,comment,created_at"

// Create inserts a review and populates the generated ID.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (user_id, movie_id, rating, comment) VALUES (?,?,?,?)",
		rv.UserID, rv.MovieID, rv.Rating, rv.Comment)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// GetByID fetches a single review.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (model.Review, error) {
	var rv model.Review
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id=? LIMIT 1",
		id).Scan(&rv.ID, &rv.UserID, &rv.MovieID, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rv, ErrNotFound
	}
	return rv, err
}

// ListByMovie returns all reviews for a movie, newest first.
func (r *ReviewRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Review, error) {
	return r.list(ctx, "movie_id", movieID)
}

// ListByUser returns all reviews written by a user, newest first.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Review, error) {
	return r.list(ctx, "user_id", userID)
}

func (r *ReviewRepo) list(ctx context.Context, col string, id uint64) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE "+col+"=? ORDER BY created_at DESC", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reviews := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.MovieID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// Update rewrites a review's rating and comment.
func (r *ReviewRepo) Update(ctx context.Context, rv *model.Review) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET rating=?, comment=? WHERE id=?",
		rv.Rating, rv.Comment, rv.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, rv.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a review row.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
