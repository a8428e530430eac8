package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// RatingReadRepository handles rating read operations
type RatingReadRepository struct {
	db *sqlx.DB
}

func NewRatingReadRepository(db *sqlx.DB) *RatingReadRepository {
	return &RatingReadRepository{db: db}
}

// Summary returns the mean and count of a book's ratings. The mean is 0 for no ratings.
func (r *RatingReadRepository) Summary(ctx context.Context, bookID string) (models.RatingSummary, error) {
	const query = `
		SELECT COALESCE(AVG(rating), 0)::DOUBLE PRECISION AS average,
		       COUNT(*)::INTEGER AS count
		FROM book_ratings
		WHERE book_id = $1
	`

	var summary models.RatingSummary
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &summary, query, bookID)
	logQuery(query, []any{bookID}, summary, err)

	return summary, err
}

// GetUserRating returns the user's rating for the book, or nil when there is none.
func (r *RatingReadRepository) GetUserRating(ctx context.Context, userID int64, bookID string) (*int, error) {
	const query = `
		SELECT rating
		FROM book_ratings
		WHERE user_id = $1 AND book_id = $2
	`

	var rating int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &rating, query, userID, bookID)
	logQuery(query, []any{userID, bookID}, rating, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// RatingWriteRepository handles rating write operations
type RatingWriteRepository struct {
	db *sqlx.DB
}

func NewRatingWriteRepository(db *sqlx.DB) *RatingWriteRepository {
	return &RatingWriteRepository{db: db}
}

// Upsert stores the user's rating for the book, replacing any previous one.
func (r *RatingWriteRepository) Upsert(ctx context.Context, userID int64, bookID string, rating int) error {
	const query = `
		INSERT INTO book_ratings (user_id, book_id, rating, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID, bookID, rating)
	logQuery(query, []any{userID, bookID, rating}, rowsAffected(res), err)

	return err
}

// RecomputeAverage stores the mean of all ratings on the book row in one
// statement and returns the new mean together with the rating count.
func (r *RatingWriteRepository) RecomputeAverage(ctx context.Context, bookID string) (models.RatingSummary, error) {
	const query = `
		WITH agg AS (
			SELECT COALESCE(AVG(rating), 0)::DOUBLE PRECISION AS average,
			       COUNT(*)::INTEGER AS count
			FROM book_ratings
			WHERE book_id = $1
		)
		UPDATE books
		SET average_rating = agg.average
		FROM agg
		WHERE books.id = $1
		RETURNING agg.average, agg.count
	`

	var summary models.RatingSummary
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &summary, query, bookID)
	logQuery(query, []any{bookID}, summary, err)

	return summary, err
}
