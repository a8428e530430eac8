package models

import "time"

// Rating bounds accepted for a single book rating.
const (
	MinRating = 1
	MaxRating = 5
)

// BookRatingDB is the rating one user gave one book. Latest write wins.
type BookRatingDB struct {
	RatingID  int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	BookID    string    `json:"bookId" db:"book_id"`
	Rating    int       `json:"rating" db:"rating"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// RatingSummary aggregates the ratings of a book.
// Average is 0 when Count is 0.
type RatingSummary struct {
	Average float64 `json:"average" db:"average"`
	Count   int     `json:"count" db:"count"`
}

// Mean returns the arithmetic mean of ratings, or 0 for an empty slice.
func Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
