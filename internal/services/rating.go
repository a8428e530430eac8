package services

import (
	"context"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

//go:generate mockgen -source=rating.go -destination=rating_mock.go -package=services

// BookEnsurer creates placeholder books and serializes writers on a book.
type BookEnsurer interface {
	EnsureExists(ctx context.Context, bookID, title string) error
	LockForUpdate(ctx context.Context, bookID string) error
}

// RatingReader defines rating read operations.
type RatingReader interface {
	Summary(ctx context.Context, bookID string) (models.RatingSummary, error)
	GetUserRating(ctx context.Context, userID int64, bookID string) (*int, error)
}

// RatingWriter defines rating write operations.
type RatingWriter interface {
	Upsert(ctx context.Context, userID int64, bookID string, rating int) error
	RecomputeAverage(ctx context.Context, bookID string) (models.RatingSummary, error)
}

// RatingService handles book ratings and the derived average.
type RatingService struct {
	books     BookEnsurer
	reader    RatingReader
	writer    RatingWriter
	tx        Transactor
	publisher Publisher
}

// NewRatingService creates a new RatingService.
func NewRatingService(books BookEnsurer, reader RatingReader, writer RatingWriter, tx Transactor, publisher Publisher) *RatingService {
	return &RatingService{
		books:     books,
		reader:    reader,
		writer:    writer,
		tx:        tx,
		publisher: publisher,
	}
}

// Rate stores the user's rating and recomputes the book average in the same
// transaction. The book row is locked first so concurrent raters of one book
// are serialized.
func (s *RatingService) Rate(ctx context.Context, userID int64, bookID string, rating int) (models.RatingSummary, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return models.RatingSummary{}, ErrInvalidRating
	}

	var summary models.RatingSummary
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.books.EnsureExists(ctx, bookID, models.UnknownBookTitle); err != nil {
			return err
		}
		if err := s.books.LockForUpdate(ctx, bookID); err != nil {
			return err
		}
		if err := s.writer.Upsert(ctx, userID, bookID, rating); err != nil {
			return err
		}
		var err error
		summary, err = s.writer.RecomputeAverage(ctx, bookID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to save rating", "userID", userID, "bookID", bookID, "rating", rating, "error", err)
		return models.RatingSummary{}, err
	}

	s.tx.AfterCommit(ctx, func() {
		s.publisher.Publish(ctx, models.ActivityEvent{
			UserID:    userID,
			BookID:    bookID,
			Operation: models.OperationRatingSubmitted,
			Payload:   map[string]any{"rating": rating, "average": summary.Average, "count": summary.Count},
		})
	})
	return summary, nil
}

// Get returns the book's rating summary and, when userID is given, that user's rating.
func (s *RatingService) Get(ctx context.Context, bookID string, userID *int64) (models.RatingSummary, *int, error) {
	summary, err := s.reader.Summary(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get rating summary", "bookID", bookID, "error", err)
		return models.RatingSummary{}, nil, err
	}

	if userID == nil {
		return summary, nil, nil
	}

	own, err := s.reader.GetUserRating(ctx, *userID, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get user rating", "bookID", bookID, "userID", *userID, "error", err)
		return models.RatingSummary{}, nil, err
	}
	return summary, own, nil
}
