package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// BookRepository stores the local copy of external catalog metadata.
type BookRepository struct {
	db *sqlx.DB
}

func NewBookRepository(db *sqlx.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Upsert creates the book or refreshes its metadata. The average rating is
// owned by the ratings and is never overwritten here.
func (r *BookRepository) Upsert(ctx context.Context, book models.BookDB) error {
	const query = `
		INSERT INTO books (id, title, authors, image, description, categories, average_rating)
		VALUES ($1, $2, $3, $4, $5, $6, NULL)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    authors = EXCLUDED.authors,
		    image = EXCLUDED.image,
		    description = EXCLUDED.description,
		    categories = EXCLUDED.categories
	`

	categories := book.Categories
	if categories == nil {
		categories = pq.StringArray{}
	}
	args := []any{book.BookID, book.Title, book.Authors, book.Image, book.Description, categories}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	return err
}

// EnsureExists creates a placeholder row when the book has never been seen.
func (r *BookRepository) EnsureExists(ctx context.Context, bookID, title string) error {
	const query = `
		INSERT INTO books (id, title, authors, image, description, categories, average_rating)
		VALUES ($1, $2, '', '', '', '{}', NULL)
		ON CONFLICT (id) DO NOTHING
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, bookID, title)
	logQuery(query, []any{bookID, title}, rowsAffected(res), err)

	return err
}

// LockForUpdate takes a row lock on the book until the surrounding transaction ends.
func (r *BookRepository) LockForUpdate(ctx context.Context, bookID string) error {
	const query = `SELECT id FROM books WHERE id = $1 FOR UPDATE`

	var id string
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &id, query, bookID)
	logQuery(query, []any{bookID}, id, err)

	return err
}
