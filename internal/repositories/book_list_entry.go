package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// BookListEntryRepository manages book membership in lists.
type BookListEntryRepository struct {
	db *sqlx.DB
}

func NewBookListEntryRepository(db *sqlx.DB) *BookListEntryRepository {
	return &BookListEntryRepository{db: db}
}

// Exists reports whether the book is already in the list.
func (r *BookListEntryRepository) Exists(ctx context.Context, bookListID int64, bookID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM book_list_entries WHERE book_list_id = $1 AND book_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, bookListID, bookID)
	logQuery(query, []any{bookListID, bookID}, exists, err)

	return exists, err
}

// Save adds the book to the list.
func (r *BookListEntryRepository) Save(ctx context.Context, bookListID int64, bookID string) error {
	const query = `
		INSERT INTO book_list_entries (book_id, book_list_id)
		VALUES ($1, $2)
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, bookID, bookListID)
	logQuery(query, []any{bookID, bookListID}, rowsAffected(res), err)

	return err
}

// Delete removes the book from the list and returns how many rows were removed.
func (r *BookListEntryRepository) Delete(ctx context.Context, bookListID int64, bookID string) (int64, error) {
	const query = `DELETE FROM book_list_entries WHERE book_list_id = $1 AND book_id = $2`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, bookListID, bookID)
	n := rowsAffected(res)
	logQuery(query, []any{bookListID, bookID}, n, err)

	return n, err
}

// DeleteByList removes every entry of the list.
func (r *BookListEntryRepository) DeleteByList(ctx context.Context, bookListID int64) (int64, error) {
	const query = `DELETE FROM book_list_entries WHERE book_list_id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, bookListID)
	n := rowsAffected(res)
	logQuery(query, []any{bookListID}, n, err)

	return n, err
}
