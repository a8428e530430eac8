package models

import "time"

// AnonymousAuthor is shown when a comment's author cannot be resolved.
const AnonymousAuthor = "Usuario"

// CommentDB is a free-text comment by a user on a book. Comments are immutable.
type CommentDB struct {
	CommentID int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	BookID    string    `json:"bookId" db:"book_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  *string   `json:"-" db:"username"`
}

// CommentAuthor is the display information attached to a comment.
type CommentAuthor struct {
	Name string `json:"name"`
}

// CommentWithAuthor is a comment annotated with its author's display name.
type CommentWithAuthor struct {
	CommentDB
	User CommentAuthor `json:"user"`
}

// WithAuthor annotates the comment with the author's username.
func (c CommentDB) WithAuthor() CommentWithAuthor {
	name := AnonymousAuthor
	if c.Username != nil && *c.Username != "" {
		name = *c.Username
	}
	return CommentWithAuthor{CommentDB: c, User: CommentAuthor{Name: name}}
}
