package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByBook returns the book's comments oldest first with the author's username.
func (r *CommentReadRepository) ListByBook(ctx context.Context, bookID string) ([]models.CommentDB, error) {
	const query = `
		SELECT c.id, c.user_id, c.book_id, c.content, c.created_at, u.username
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.book_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	comments := []models.CommentDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &comments, query, bookID)
	logQuery(query, []any{bookID}, len(comments), err)

	return comments, err
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save stores a comment and returns it with the author's username.
func (r *CommentWriteRepository) Save(ctx context.Context, userID int64, bookID, content string) (*models.CommentDB, error) {
	const query = `
		WITH ins AS (
			INSERT INTO comments (user_id, book_id, content, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING id, user_id, book_id, content, created_at
		)
		SELECT ins.id, ins.user_id, ins.book_id, ins.content, ins.created_at, u.username
		FROM ins
		LEFT JOIN users u ON u.id = ins.user_id
	`

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &comment, query, userID, bookID, content)
	logQuery(query, []any{userID, bookID}, comment.CommentID, err)

	if err != nil {
		return nil, err
	}
	return &comment, nil
}
