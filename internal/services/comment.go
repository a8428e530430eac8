package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=services

// CommentReader defines comment read operations.
type CommentReader interface {
	ListByBook(ctx context.Context, bookID string) ([]models.CommentDB, error)
}

// CommentWriter defines comment write operations.
type CommentWriter interface {
	Save(ctx context.Context, userID int64, bookID, content string) (*models.CommentDB, error)
}

// PlaceholderBookCreator creates a book row for an unseen catalog id.
type PlaceholderBookCreator interface {
	EnsureExists(ctx context.Context, bookID, title string) error
}

// CommentService handles book comments.
type CommentService struct {
	reader    CommentReader
	writer    CommentWriter
	books     PlaceholderBookCreator
	publisher Publisher
}

// NewCommentService creates a new CommentService.
func NewCommentService(reader CommentReader, writer CommentWriter, books PlaceholderBookCreator, publisher Publisher) *CommentService {
	return &CommentService{
		reader:    reader,
		writer:    writer,
		books:     books,
		publisher: publisher,
	}
}

// List returns the book's comments, oldest first, with author names.
func (s *CommentService) List(ctx context.Context, bookID string) ([]models.CommentWithAuthor, error) {
	comments, err := s.reader.ListByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "bookID", bookID, "error", err)
		return nil, err
	}

	result := make([]models.CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		result = append(result, c.WithAuthor())
	}
	return result, nil
}

// Create stores a comment by the user, creating a placeholder book if needed.
func (s *CommentService) Create(ctx context.Context, userID int64, bookID, content string) (*models.CommentWithAuthor, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidComment
	}

	if err := s.books.EnsureExists(ctx, bookID, models.ExternalBookTitle); err != nil {
		logger.Log.Errorw("failed to ensure book exists", "bookID", bookID, "error", err)
		return nil, err
	}

	comment, err := s.writer.Save(ctx, userID, bookID, content)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "userID", userID, "bookID", bookID, "error", err)
		return nil, err
	}

	s.publisher.Publish(ctx, models.ActivityEvent{
		UserID:    userID,
		BookID:    bookID,
		Operation: models.OperationCommentCreated,
		Payload:   map[string]any{"commentId": comment.CommentID},
	})

	withAuthor := comment.WithAuthor()
	return &withAuthor, nil
}
