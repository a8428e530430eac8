package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

//go:generate mockgen -source=book_list.go -destination=book_list_mock.go -package=services

// BookListReader defines read operations for book lists.
type BookListReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.BookListDB, error)
	GetByID(ctx context.Context, bookListID int64) (*models.BookListDB, error)
	GetByUserAndName(ctx context.Context, userID int64, name string) (*models.BookListDB, error)
}

// BookListWriter defines write operations for book lists.
type BookListWriter interface {
	Save(ctx context.Context, userID int64, name string, isDefault bool) (*models.BookListDB, error)
	Delete(ctx context.Context, bookListID int64) error
}

// BookListEntryStore manages list membership.
type BookListEntryStore interface {
	Exists(ctx context.Context, bookListID int64, bookID string) (bool, error)
	Save(ctx context.Context, bookListID int64, bookID string) error
	Delete(ctx context.Context, bookListID int64, bookID string) (int64, error)
	DeleteByList(ctx context.Context, bookListID int64) (int64, error)
}

// BookUpserter stores book metadata.
type BookUpserter interface {
	Upsert(ctx context.Context, book models.BookDB) error
}

// BookListService handles the user's reading lists.
type BookListService struct {
	reader    BookListReader
	writer    BookListWriter
	entries   BookListEntryStore
	books     BookUpserter
	tx        Transactor
	publisher Publisher
}

// NewBookListService creates a new BookListService.
func NewBookListService(
	reader BookListReader,
	writer BookListWriter,
	entries BookListEntryStore,
	books BookUpserter,
	tx Transactor,
	publisher Publisher,
) *BookListService {
	return &BookListService{
		reader:    reader,
		writer:    writer,
		entries:   entries,
		books:     books,
		tx:        tx,
		publisher: publisher,
	}
}

// List returns the user's lists in creation order.
func (s *BookListService) List(ctx context.Context, userID int64) ([]models.BookListDB, error) {
	lists, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list book lists", "userID", userID, "error", err)
		return nil, err
	}
	return lists, nil
}

// Create adds a new list. The name is trimmed and must be unique for the user.
func (s *BookListService) Create(ctx context.Context, userID int64, name string) (*models.BookListDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBookListNameInvalid
	}

	existing, err := s.reader.GetByUserAndName(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to check book list exists", "userID", userID, "name", name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrBookListExists
	}

	list, err := s.writer.Save(ctx, userID, name, false)
	if isUniqueViolation(err) {
		return nil, ErrBookListExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save book list", "userID", userID, "name", name, "error", err)
		return nil, err
	}
	return list, nil
}

// ownedList loads the list and checks that it belongs to the user.
func (s *BookListService) ownedList(ctx context.Context, userID, bookListID int64) (*models.BookListDB, error) {
	list, err := s.reader.GetByID(ctx, bookListID)
	if err != nil {
		logger.Log.Errorw("failed to get book list", "bookListID", bookListID, "error", err)
		return nil, err
	}
	if list == nil || list.UserID != userID {
		logger.Log.Warnw("book list access denied", "userID", userID, "bookListID", bookListID)
		return nil, ErrBookListForbidden
	}
	return list, nil
}

// AddBook stores the book metadata and adds the book to the user's list.
func (s *BookListService) AddBook(ctx context.Context, userID, bookListID int64, book models.BookDB) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.ownedList(ctx, userID, bookListID); err != nil {
			return err
		}

		if err := s.books.Upsert(ctx, book); err != nil {
			logger.Log.Errorw("failed to upsert book", "bookID", book.BookID, "error", err)
			return err
		}

		exists, err := s.entries.Exists(ctx, bookListID, book.BookID)
		if err != nil {
			logger.Log.Errorw("failed to check list entry", "bookListID", bookListID, "bookID", book.BookID, "error", err)
			return err
		}
		if exists {
			return ErrBookAlreadyInList
		}

		if err := s.entries.Save(ctx, bookListID, book.BookID); err != nil {
			logger.Log.Errorw("failed to save list entry", "bookListID", bookListID, "bookID", book.BookID, "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Under a request transaction the event waits for its commit.
	s.tx.AfterCommit(ctx, func() {
		s.publisher.Publish(ctx, models.ActivityEvent{
			UserID:    userID,
			BookID:    book.BookID,
			Operation: models.OperationBookAddedToList,
			Payload:   map[string]any{"bookListId": bookListID},
		})
	})
	return nil
}

// RemoveBook removes the book from the user's list.
func (s *BookListService) RemoveBook(ctx context.Context, userID, bookListID int64, bookID string) error {
	if _, err := s.ownedList(ctx, userID, bookListID); err != nil {
		return err
	}

	if _, err := s.entries.Delete(ctx, bookListID, bookID); err != nil {
		logger.Log.Errorw("failed to delete list entry", "bookListID", bookListID, "bookID", bookID, "error", err)
		return err
	}
	return nil
}

// DeleteList removes all entries of the list and then the list itself.
// Default lists are refused regardless of their current name.
func (s *BookListService) DeleteList(ctx context.Context, userID, bookListID int64) error {
	return s.tx.Do(ctx, func(ctx context.Context) error {
		list, err := s.ownedList(ctx, userID, bookListID)
		if err != nil {
			return err
		}
		if list.IsDefault {
			return ErrDefaultListProtected
		}

		if _, err := s.entries.DeleteByList(ctx, bookListID); err != nil {
			logger.Log.Errorw("failed to delete list entries", "bookListID", bookListID, "error", err)
			return err
		}
		if err := s.writer.Delete(ctx, bookListID); err != nil {
			logger.Log.Errorw("failed to delete book list", "bookListID", bookListID, "error", err)
			return err
		}
		return nil
	})
}
