package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// BookListReadRepository handles book list read operations
type BookListReadRepository struct {
	db *sqlx.DB
}

func NewBookListReadRepository(db *sqlx.DB) *BookListReadRepository {
	return &BookListReadRepository{db: db}
}

// ListByUser returns the user's lists in creation order.
func (r *BookListReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookListDB, error) {
	const query = `
		SELECT id, user_id, name, is_default, created_at
		FROM book_lists
		WHERE user_id = $1
		ORDER BY id ASC
	`

	lists := []models.BookListDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &lists, query, userID)
	logQuery(query, []any{userID}, len(lists), err)

	return lists, err
}

// GetByID returns the list, or nil, nil when absent.
func (r *BookListReadRepository) GetByID(ctx context.Context, bookListID int64) (*models.BookListDB, error) {
	const query = `
		SELECT id, user_id, name, is_default, created_at
		FROM book_lists
		WHERE id = $1
	`

	var list models.BookListDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &list, query, bookListID)
	logQuery(query, []any{bookListID}, list.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetByUserAndName returns the user's list with exactly this name, or nil, nil.
func (r *BookListReadRepository) GetByUserAndName(ctx context.Context, userID int64, name string) (*models.BookListDB, error) {
	const query = `
		SELECT id, user_id, name, is_default, created_at
		FROM book_lists
		WHERE user_id = $1 AND name = $2
	`

	var list models.BookListDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &list, query, userID, name)
	logQuery(query, []any{userID, name}, list.BookListID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// ListWithBooks returns every list of the user with its books nested, in creation order.
func (r *BookListReadRepository) ListWithBooks(ctx context.Context, userID int64) ([]models.BookListDetail, error) {
	const query = `
		SELECT l.id AS list_id, l.name AS list_name, l.is_default,
		       b.id AS book_id, b.title, b.authors, b.image, b.description,
		       b.categories, b.average_rating
		FROM book_lists l
		LEFT JOIN book_list_entries e ON e.book_list_id = l.id
		LEFT JOIN books b ON b.id = e.book_id
		WHERE l.user_id = $1
		ORDER BY l.id ASC, e.id ASC
	`

	var rows []models.BookListBookRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, userID)
	logQuery(query, []any{userID}, len(rows), err)
	if err != nil {
		return nil, err
	}

	return groupListRows(rows), nil
}

// groupListRows folds joined rows, already ordered by list, into nested lists.
func groupListRows(rows []models.BookListBookRow) []models.BookListDetail {
	lists := []models.BookListDetail{}
	for _, row := range rows {
		if n := len(lists); n == 0 || lists[n-1].ID != row.BookListID {
			lists = append(lists, models.BookListDetail{
				ID:        row.BookListID,
				Name:      row.Name,
				IsDefault: row.IsDefault,
				Entries:   []models.ListEntry{},
			})
		}
		if row.BookID == nil {
			continue
		}
		book := models.BookDB{
			BookID:        *row.BookID,
			Title:         deref(row.Title),
			Authors:       deref(row.Authors),
			Image:         deref(row.Image),
			Description:   deref(row.Description),
			Categories:    row.Categories,
			AverageRating: row.AverageRating,
		}
		last := &lists[len(lists)-1]
		last.Entries = append(last.Entries, models.ListEntry{Book: book})
	}
	return lists
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BookListWriteRepository handles book list write operations
type BookListWriteRepository struct {
	db *sqlx.DB
}

func NewBookListWriteRepository(db *sqlx.DB) *BookListWriteRepository {
	return &BookListWriteRepository{db: db}
}

// Save creates a list for the user and returns the stored row.
func (r *BookListWriteRepository) Save(ctx context.Context, userID int64, name string, isDefault bool) (*models.BookListDB, error) {
	const query = `
		INSERT INTO book_lists (user_id, name, is_default, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, name, is_default, created_at
	`

	var list models.BookListDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &list, query, userID, name, isDefault)
	logQuery(query, []any{userID, name, isDefault}, list.BookListID, err)

	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes the list row. Entries must have been removed before.
func (r *BookListWriteRepository) Delete(ctx context.Context, bookListID int64) error {
	const query = `DELETE FROM book_lists WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, bookListID)
	logQuery(query, []any{bookListID}, rowsAffected(res), err)

	return err
}
